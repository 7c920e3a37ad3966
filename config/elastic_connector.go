package config

import (
	"github.com/olivere/elastic/v7"
)

func NewElasticClient(elasticUrl string) (*elastic.Client, error) {
	return elastic.NewClient(elastic.SetURL(elasticUrl), elastic.SetSniff(false))
}
