package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/pkg/logger"
)

// videosIndexMapping is the schema of the catalog search index. Title and
// category are the searchable fields.
const videosIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"title": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
			},
			"category": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 64}}
			},
			"section": {"type": "keyword"}
		}
	}
}`

// VideoDocument is the indexed form of one catalog row.
type VideoDocument struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Section  string `json:"section"`
}

// EnsureVideosIndex creates the videos index when it does not exist yet.
func (c *Client) EnsureVideosIndex(ctx context.Context) error {
	resp, err := c.es.Indices.Exists(
		[]string{c.index},
		c.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode == 200 {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", c.index))
		return nil
	}

	createResp, err := c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(bytes.NewReader([]byte(videosIndexMapping))),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer createResp.Body.Close()

	if createResp.IsError() {
		return fmt.Errorf("create index failed: %s", createResp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", c.index))
	return nil
}

// IndexVideo upserts one document, keyed by the video id.
func (c *Client) IndexVideo(ctx context.Context, doc *VideoDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := c.es.Index(
		c.index,
		bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(fmt.Sprintf("%d", doc.ID)),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video indexed", zap.Int64("video_id", doc.ID))
	return nil
}

// SearchVideoIDs runs a multi_match over title and category and returns the
// matching ids in relevance order. The caller loads the rows from the DB, so
// stale documents cost nothing but a miss.
func (c *Client) SearchVideoIDs(ctx context.Context, keyword string) ([]int64, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":    keyword,
				"fields":   []string{"title^3", "category"},
				"type":     "best_fields",
				"operator": "or",
			},
		},
		"_source": []string{"id"},
		"size":    1000,
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, nil
}
