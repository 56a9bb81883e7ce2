package mock

import "github.com/rjanotik/volby"

var _ volby.IndexExtractor = (*IndexExtractor)(nil)

// IndexExtractor is a mock implementation of volby.IndexExtractor.
type IndexExtractor struct {
	ExtractMunicipalitiesFn func(html string, baseURL string) ([]volby.MunicipalityRef, error)
}

func (e *IndexExtractor) ExtractMunicipalities(html string, baseURL string) ([]volby.MunicipalityRef, error) {
	return e.ExtractMunicipalitiesFn(html, baseURL)
}

var _ volby.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor is a mock implementation of volby.DetailExtractor.
type DetailExtractor struct {
	ExtractDetailFn func(html string) (*volby.Detail, error)
}

func (e *DetailExtractor) ExtractDetail(html string) (*volby.Detail, error) {
	return e.ExtractDetailFn(html)
}
