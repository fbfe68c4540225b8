package model

// CloudinaryAccount mirrors `cloudinaryacc`: the association between a
// platform username and its image-hosting credentials.  At most one row per
// username; creation is checked (not enforced transactionally) upstream.
type CloudinaryAccount struct {
    ID        int64  `json:"id,omitempty"`
    Username  string `json:"username"`
    CloudName string `json:"cloud_name,omitempty"`
    APIKey    string `json:"api_key,omitempty"`
    APISecret string `json:"api_secret,omitempty"`
    Preset    string `json:"upload_preset,omitempty"`
    CreatedAt string `json:"created_at,omitempty"`
}
