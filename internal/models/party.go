package models

// Company is the issuing company of a document, including the logo settings
// used by the PDF renderer. Only Name is required.
type Company struct {
	Name            string  `json:"name"`
	Address         string  `json:"address,omitempty"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	SIRET           string  `json:"siret,omitempty"`
	LogoPath        string  `json:"logo_path,omitempty"`
	LogoMaxWidth    float64 `json:"logo_max_width,omitempty"`
	LogoMaxHeight   float64 `json:"logo_max_height,omitempty"`
	LogoMarginRight float64 `json:"logo_margin_right,omitempty"`
}

// Party is the customer (recipient) of a document.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	SIRET   string `json:"siret,omitempty"`
}
