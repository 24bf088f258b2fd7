package provider

import (
	"strings"
	"testing"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestAuthorityWeight(t *testing.T) {
	assert.Equal(t, 10, AuthorityWeight(config.AuthorityLicensedAI))
	assert.Equal(t, 8, AuthorityWeight(config.AuthorityGovernment))
	assert.Equal(t, 6, AuthorityWeight(config.AuthorityPeerReviewed))
	assert.Equal(t, 4, AuthorityWeight(config.AuthorityIndustry))
	assert.Equal(t, 2, AuthorityWeight(config.AuthorityCompany))
	assert.Equal(t, 1, AuthorityWeight(config.AuthorityNews))
	assert.Equal(t, 0, AuthorityWeight(config.AuthorityUnknown))
	assert.Equal(t, 0, AuthorityWeight(config.AuthorityClass("bogus")))
}

func TestClassifyDomain(t *testing.T) {
	tests := []struct {
		url  string
		want config.AuthorityClass
	}{
		{"https://www.fda.gov/drugs/apixaban", config.AuthorityGovernment},
		{"https://clinicaltrials.gov/study/NCT123", config.AuthorityGovernment},
		{"https://pubmed.ncbi.nlm.nih.gov/12345/", config.AuthorityPeerReviewed},
		{"https://doi.org/10.1000/xyz", config.AuthorityPeerReviewed},
		{"https://www.nature.com/articles/abc", config.AuthorityPeerReviewed},
		{"https://www.fiercepharma.com/pharma/story", config.AuthorityIndustry},
		{"https://www.reuters.com/business/healthcare", config.AuthorityNews},
		{"https://www.pfizer.com/products", config.AuthorityCompany},
		{"https://example.org/page", config.AuthorityUnknown},
		{"not a url", config.AuthorityUnknown},
		{"", config.AuthorityUnknown},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyDomain(tc.url), "url %q", tc.url)
	}
}

func TestWeigh_ProviderTag(t *testing.T) {
	cfg := &config.ProviderConfig{
		Name:      "openai",
		Kind:      config.ProviderKindChat,
		Authority: config.AuthorityLicensedAI,
	}
	resp := &Response{Provider: "openai", Model: "gpt-4o", Text: strings.Repeat("x", 500)}

	w := Weigh(resp, cfg)
	assert.Equal(t, config.AuthorityLicensedAI, w.Authority)
	assert.Equal(t, 10, w.Weight)
	assert.InDelta(t, 0.5, w.Credibility, 1e-9)
}

func TestWeigh_CitationDomainOverride(t *testing.T) {
	cfg := &config.ProviderConfig{
		Name:      "perplexity",
		Kind:      config.ProviderKindCitation,
		Authority: config.AuthorityLicensedAI,
	}
	resp := &Response{
		Provider:  "perplexity",
		Text:      strings.Repeat("y", 2000),
		CitedURLs: []string{"https://www.fda.gov/drugs", "https://example.com"},
	}

	w := Weigh(resp, cfg)
	assert.Equal(t, config.AuthorityGovernment, w.Authority, "top cited URL domain takes over")
	assert.Equal(t, 8, w.Weight)
	assert.Equal(t, 1.0, w.Credibility, "credibility capped at 1")
}

func TestWeigh_CitationWithoutURLsKeepsProviderTag(t *testing.T) {
	cfg := &config.ProviderConfig{
		Name:      "perplexity",
		Kind:      config.ProviderKindCitation,
		Authority: config.AuthorityLicensedAI,
	}
	resp := &Response{Provider: "perplexity", Text: "short"}

	w := Weigh(resp, cfg)
	assert.Equal(t, config.AuthorityLicensedAI, w.Authority)
	assert.Equal(t, 10, w.Weight)
}

func TestWeigh_EmptyAuthorityDefaultsUnknown(t *testing.T) {
	cfg := &config.ProviderConfig{Name: "x", Kind: config.ProviderKindChat}
	w := Weigh(&Response{Text: ""}, cfg)
	assert.Equal(t, config.AuthorityUnknown, w.Authority)
	assert.Equal(t, 0, w.Weight)
	assert.Equal(t, 0.0, w.Credibility)
}
