package rvnindexx

import "encoding/json"

type fieldOptionsJson struct {
	Analyzer    *string         `json:"Analyzer"`
	Indexing    *string         `json:"Indexing"`
	Sort        *string         `json:"Sort"`
	Spatial     json.RawMessage `json:"Spatial"`
	Storage     *string         `json:"Storage"`
	Suggestions *bool           `json:"Suggestions"`
	TermVector  *string         `json:"TermVector"`
}

type indexDefinitionJson struct {
	Configuration            map[string]string          `json:"Configuration"`
	Fields                   map[string]json.RawMessage `json:"Fields"`
	IndexId                  int                        `json:"IndexId"`
	IsTestIndex              bool                       `json:"IsTestIndex"`
	LockMode                 *string                    `json:"LockMode"`
	Maps                     []string                   `json:"Maps"`
	Name                     string                     `json:"Name"`
	Reduce                   *string                    `json:"Reduce"`
	OutputReduceToCollection *string                    `json:"OutputReduceToCollection"`
	Priority                 *string                    `json:"Priority"`
	Type                     IndexType                  `json:"Type"`
}
