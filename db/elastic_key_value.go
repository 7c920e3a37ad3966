package db

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const slotMapping = `{
	"mappings": {
		"properties": {
			"value": {"type": "text", "index": false}
		}
	}
}`

type slotDocument struct {
	Value string `json:"value"`
}

// ElasticKeyValue keeps each slot as one document whose id is the key.
type ElasticKeyValue struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func CreateElasticKeyValue(client *elastic.Client, indexName string) *ElasticKeyValue {
	return &ElasticKeyValue{indexName, client}
}

// EnsureIndex creates the index with an unindexed value field if it is missing.
func (kv *ElasticKeyValue) EnsureIndex(ctx context.Context) error {
	exists, err := kv.ElasticClient.IndexExists(kv.IndexName).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = kv.ElasticClient.
		CreateIndex(kv.IndexName).
		BodyString(slotMapping).
		Do(ctx)

	return err
}

func (kv *ElasticKeyValue) Get(ctx context.Context, key string) ([]byte, bool, error) {
	doc, err := kv.ElasticClient.
		Get().
		Index(kv.IndexName).
		Id(key).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if !doc.Found {
		return nil, false, nil
	}

	var slot slotDocument
	if err := json.Unmarshal(doc.Source, &slot); err != nil {
		return nil, false, err
	}

	return []byte(slot.Value), true, nil
}

func (kv *ElasticKeyValue) Set(ctx context.Context, key string, value []byte) error {
	_, err := kv.ElasticClient.
		Index().
		Index(kv.IndexName).
		Id(key).
		BodyJson(slotDocument{Value: string(value)}).
		Refresh("wait_for").
		Do(ctx)

	return err
}
