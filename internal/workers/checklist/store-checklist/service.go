package storechecklist

import (
	"bytes"
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchIndexer adapts the Elasticsearch client to SearchIndexer.
type ElasticsearchIndexer struct {
	client *elasticsearch.Client
}

func NewElasticsearchIndexer(client *elasticsearch.Client) *ElasticsearchIndexer {
	return &ElasticsearchIndexer{client: client}
}

func (e *ElasticsearchIndexer) Index(ctx context.Context, index, docID string, body []byte) error {
	res, err := e.client.Index(
		index,
		bytes.NewReader(body),
		e.client.Index.WithDocumentID(docID),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithRefresh("false"),
	)
	if err != nil {
		return fmt.Errorf("index request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index request error: %s", res.Status())
	}

	return nil
}
