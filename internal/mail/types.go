package mail

// Attachment is a file attached to an outgoing message
type Attachment struct {
	// Filename is the attachment's name as shown to the recipient
	Filename string

	// Bytes is the attachment content
	Bytes []byte

	// MIMEType is the attachment's content type
	MIMEType string
}

// Message is one outgoing email
type Message struct {
	// To is the recipient address
	To string

	// Subject is the message subject line
	Subject string

	// HTMLBody is the message body
	HTMLBody string

	// Attachments to deliver with the message
	Attachments []*Attachment
}
