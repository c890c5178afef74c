package views

import (
	"encoding/json"

	"github.com/edelenyi/praxis/model"
)

// PracticeJSONLD returns the schema.org MedicalBusiness description of the
// practice, embedded on the home page.
func PracticeJSONLD(site Site) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "MedicalBusiness",
		"name":        site.Name,
		"@id":         site.URL,
		"url":         site.URL,
		"description": site.Description,
	}
	if site.Phone != "" {
		data["telephone"] = site.Phone
	}
	if site.Address != "" {
		data["address"] = map[string]string{
			"@type":           "PostalAddress",
			"streetAddress":   site.Address,
			"addressCountry":  "HU",
			"addressLocality": "Budapest",
		}
	}
	if site.Author != "" {
		data["founder"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJSONLD returns the schema.org BlogPosting description of a post.
func BlogPostingJSONLD(post model.BlogPost, site Site, locale string) string {
	postURL := buildURL(site.URL, locale, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"datePublished": post.CreatedAt.Format("2006-01-02"),
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if site.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
