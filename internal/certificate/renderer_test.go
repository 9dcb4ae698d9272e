package certificate

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RendererTestSuite struct {
	suite.Suite
	renderer Renderer
}

func (s *RendererTestSuite) SetupTest() {
	r, err := New(&Config{Width: 600, Height: 425})
	s.Require().NoError(err)
	s.renderer = r
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) winnerInput() *RenderInput {
	return &RenderInput{
		ParticipantName: "Test Participant",
		HackathonTitle:  "Test Hackathon 2025",
		TeamName:        "Team 1",
		Rank:            1,
		IsWinner:        true,
		TotalScore:      42.5,
		Date:            "June 10, 2025",
	}
}

func (s *RendererTestSuite) TestRenderProducesPNG() {
	img, err := s.renderer.Render(s.winnerInput())
	s.Require().NoError(err)
	s.NotEmpty(img)
	s.True(bytes.HasPrefix(img, []byte("\x89PNG")))
}

func (s *RendererTestSuite) TestRenderParticipationVariant() {
	input := s.winnerInput()
	input.IsWinner = false
	input.Rank = 5

	img, err := s.renderer.Render(input)
	s.Require().NoError(err)
	s.NotEmpty(img)
}

func (s *RendererTestSuite) TestRenderDeterministic() {
	first, err := s.renderer.Render(s.winnerInput())
	s.Require().NoError(err)

	second, err := s.renderer.Render(s.winnerInput())
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *RendererTestSuite) TestRenderMissingFields() {
	cases := []struct {
		name  string
		input *RenderInput
	}{
		{name: "nil input", input: nil},
		{name: "no participant name", input: &RenderInput{HackathonTitle: "t", TeamName: "t"}},
		{name: "no hackathon title", input: &RenderInput{ParticipantName: "p", TeamName: "t"}},
		{name: "no team name", input: &RenderInput{ParticipantName: "p", HackathonTitle: "t"}},
		{name: "winner without rank", input: &RenderInput{ParticipantName: "p", HackathonTitle: "t", TeamName: "t", IsWinner: true}},
	}

	for _, tc := range cases {
		_, err := s.renderer.Render(tc.input)
		s.Require().ErrorIs(err, ErrMissingField, tc.name)
	}
}

func (s *RendererTestSuite) TestRenderConcurrent() {
	// Render holds no shared mutable state across calls
	var wg sync.WaitGroup
	errs := make([]error, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.renderer.Render(s.winnerInput())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.NoError(err)
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
	}

	for n, want := range cases {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}
