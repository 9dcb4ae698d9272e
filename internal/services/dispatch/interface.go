package dispatch

import "context"

// Service defines the interface for certificate dispatch operations
type Service interface {
	// DispatchAll renders and delivers a certificate to every recipient
	// in bounded-concurrency batches, returning one result per
	// recipient
	DispatchAll(ctx context.Context, input *DispatchAllInput) (*DispatchAllOutput, error)

	// SendCertificates builds the recipient list for a hackathon from
	// its teams, rankings and participants, then dispatches to all of
	// them
	SendCertificates(ctx context.Context, input *SendCertificatesInput) (*SendCertificatesOutput, error)
}
