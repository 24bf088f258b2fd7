package provider

import (
	"net/url"
	"strings"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// SourceWeight is the authority weight and credibility assigned to one
// provider response before merging.
type SourceWeight struct {
	Provider    string                `json:"provider"`
	Model       string                `json:"model"`
	Authority   config.AuthorityClass `json:"authority"`
	Weight      int                   `json:"weight"`
	Credibility float64               `json:"credibility"`
}

// authorityWeights is the fixed source hierarchy.
var authorityWeights = map[config.AuthorityClass]int{
	config.AuthorityLicensedAI:   10,
	config.AuthorityGovernment:   8,
	config.AuthorityPeerReviewed: 6,
	config.AuthorityIndustry:     4,
	config.AuthorityCompany:      2,
	config.AuthorityNews:         1,
	config.AuthorityUnknown:      0,
}

// AuthorityWeight returns the numeric weight for an authority class.
func AuthorityWeight(class config.AuthorityClass) int {
	return authorityWeights[class]
}

// peer-reviewed and government publisher hosts, matched by suffix.
var peerReviewedHosts = []string{
	"pubmed.ncbi.nlm.nih.gov", "ncbi.nlm.nih.gov", "doi.org", "nature.com",
	"sciencedirect.com", "springer.com", "wiley.com", "thelancet.com",
	"nejm.org", "bmj.com", "frontiersin.org", "plos.org",
}

var newsHosts = []string{
	"reuters.com", "bloomberg.com", "cnbc.com", "forbes.com", "wsj.com",
	"nytimes.com", "theguardian.com",
}

var industryHosts = []string{
	"fiercepharma.com", "fiercebiotech.com", "pharmatimes.com",
	"drugdiscoverytrends.com", "pharmaceutical-technology.com",
	"evaluate.com", "statista.com",
}

// ClassifyDomain maps a cited URL to an authority class by its host.
func ClassifyDomain(raw string) config.AuthorityClass {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return config.AuthorityUnknown
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")

	if strings.HasSuffix(host, ".gov") || strings.Contains(host, ".gov.") {
		return config.AuthorityGovernment
	}
	for _, h := range peerReviewedHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return config.AuthorityPeerReviewed
		}
	}
	for _, h := range industryHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return config.AuthorityIndustry
		}
	}
	for _, h := range newsHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return config.AuthorityNews
		}
	}
	if strings.HasSuffix(host, ".com") || strings.HasSuffix(host, ".co") {
		return config.AuthorityCompany
	}
	return config.AuthorityUnknown
}

// Weigh assigns authority and credibility to one response. Classification is
// by provider tag first; for citation-returning providers the domain of the
// top cited URL takes over when present. Credibility is min(1, len/1000), a
// legacy length proxy kept as one weak signal among several.
func Weigh(resp *Response, cfg *config.ProviderConfig) SourceWeight {
	authority := cfg.Authority
	if authority == "" {
		authority = config.AuthorityUnknown
	}
	if (cfg.Kind == config.ProviderKindCitation || cfg.Kind == config.ProviderKindWebSearch) && len(resp.CitedURLs) > 0 {
		authority = ClassifyDomain(resp.CitedURLs[0])
	}

	cred := float64(len(resp.Text)) / 1000
	if cred > 1 {
		cred = 1
	}

	return SourceWeight{
		Provider:    resp.Provider,
		Model:       resp.Model,
		Authority:   authority,
		Weight:      AuthorityWeight(authority),
		Credibility: cred,
	}
}
