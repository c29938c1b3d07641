package inference

import (
	"context"
	"fmt"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/assistant"
)

// OfflineClient is a deterministic stand-in for the Gemini client, used
// when the server runs without an API key (demos, local development).
type OfflineClient struct{}

func NewOfflineClient() *OfflineClient {
	return &OfflineClient{}
}

func (c *OfflineClient) Generate(_ context.Context, req assistant.Request) (*assistant.Result, error) {
	return &assistant.Result{
		Text: fmt.Sprintf("### Offline Synthesis\n\nThe clinical core is running in offline mode. "+
			"Your inquiry %q was recorded but no live synthesis is available. "+
			"Consult the institutional archive for the %s corpus directly.",
			req.Input, req.Language),
		Citations: []assistant.Citation{
			{Label: "PubMed Archive", URI: "https://pubmed.ncbi.nlm.nih.gov/"},
			{Label: "WHO Guidelines", URI: "https://www.who.int/"},
		},
	}, nil
}
