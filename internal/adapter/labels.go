package adapter

import (
	"context"
	"strconv"
	"strings"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type labelsClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewLabelsClient constructs the HTTP [LabelLookup] for cfg.LabelsURL.
func NewLabelsClient(cfg config.Adapter, log *logger.Logger) (LabelLookup, error) {
	client, err := newClient(cfg.LabelsURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &labelsClient{client: client, logger: log}, nil
}

// LookupLabels calls GET /api/labels/lookup?ids=1,2,3.
func (c *labelsClient) LookupLabels(ctx context.Context, ids []int64) ([]models.Label, error) {
	if len(ids) == 0 {
		return []models.Label{}, nil
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	var body envelope[[]models.Label]

	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(parts, ",")).
		SetResult(&body)
	if token, ok := utils.GetTokenFromContext(ctx); ok {
		req.SetAuthToken(token)
	}

	resp, err := req.Get("/api/labels/lookup")
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "labelsClient.LookupLabels").
			Int("ids", len(ids)).
			Msg("labels service request failed")
		return nil, mapTransportError("lookup labels", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Data, nil
}
