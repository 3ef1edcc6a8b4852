package models

// ProjectUpdate carries the optional fields of a project update request.
// A zero value for any field means "not provided".
type ProjectUpdate struct {
	Title        string
	Description  string
	Category     Category
	Subcategory  string
	CreatedDate  string
	DisplayOrder int
	ImageURL     string
}

// ApplyPartialUpdate overwrites each field of p for which u carries a
// non-zero value. This deliberately reproduces the legacy merge rule: an
// explicit empty string or 0 is indistinguishable from "not provided" and
// is ignored, so a field can never be cleared or displayOrder reset to 0
// through an update. Known quirk, kept in this one place so it can be
// fixed in one place.
func ApplyPartialUpdate(p *Project, u ProjectUpdate) {
	if u.Title != "" {
		p.Title = u.Title
	}
	if u.Description != "" {
		p.Description = u.Description
	}
	if u.Category != "" {
		p.Category = u.Category
	}
	if u.Subcategory != "" {
		p.Subcategory = u.Subcategory
	}
	if u.CreatedDate != "" {
		p.CreatedDate = u.CreatedDate
	}
	if u.DisplayOrder != 0 {
		p.DisplayOrder = u.DisplayOrder
	}
	if u.ImageURL != "" {
		p.ImageURL = u.ImageURL
	}
}
