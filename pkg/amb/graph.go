// Package amb looks up arbitrary-message-bridge messages and their
// execution status.
package amb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

const requestsQuery = `query getRequest($txHash: String!) {
  requests(where: { txHash_contains: $txHash }, first: 1) {
    txHash
    message {
      msgId
      msgData
      signatures
    }
  }
}`

type graphRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphResponse struct {
	Data struct {
		Requests []struct {
			TxHash  string `json:"txHash"`
			Message *struct {
				MsgID      string   `json:"msgId"`
				MsgData    string   `json:"msgData"`
				Signatures []string `json:"signatures"`
			} `json:"message"`
		} `json:"requests"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GraphClient finds the bridge message of a source transaction through the
// bridge subgraph of the source chain.
type GraphClient struct {
	endpoints map[int64]string
	client    *http.Client
	logger    *zap.Logger
}

// NewGraphClient creates a client for the given chain-id to subgraph URL map.
// A nil httpClient uses http.DefaultClient.
func NewGraphClient(endpoints map[int64]string, httpClient *http.Client, logger *zap.Logger) *GraphClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GraphClient{
		endpoints: endpoints,
		client:    httpClient,
		logger:    logger,
	}
}

// LookupMessage returns the message emitted by txHash on chainID.
// tracker.ErrMessageNotFound is returned while the subgraph has not indexed it.
func (g *GraphClient) LookupMessage(ctx context.Context, chainID int64, txHash string) (*tracker.Message, error) {
	endpoint, ok := g.endpoints[chainID]
	if !ok {
		return nil, fmt.Errorf("no subgraph configured for chain %d", chainID)
	}

	body, err := json.Marshal(graphRequest{
		Query:     requestsQuery,
		Variables: map[string]any{"txHash": strings.ToLower(txHash)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: subgraph request failed: %v", tracker.ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read subgraph response: %v", tracker.ErrNetwork, err)
	}
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: subgraph returned %s", tracker.ErrNetwork, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("subgraph returned %s", resp.Status)
	}

	var out graphResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to parse subgraph response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("subgraph query failed: %s", out.Errors[0].Message)
	}
	if len(out.Data.Requests) == 0 || out.Data.Requests[0].Message == nil {
		return nil, tracker.ErrMessageNotFound
	}

	m := out.Data.Requests[0].Message
	g.logger.Debug("Found bridge message",
		zap.Int64("chain_id", chainID),
		zap.String("tx_hash", txHash),
		zap.String("message_id", m.MsgID),
		zap.Int("signatures", len(m.Signatures)))

	return &tracker.Message{
		ID:         m.MsgID,
		Data:       m.MsgData,
		Signatures: m.Signatures,
	}, nil
}
