package models

import (
	"gorm.io/gorm"
)

// News is a storefront announcement. VideoURL is optional; entries with
// only a video are rendered in the video strip on the home page.
type News struct {
	gorm.Model
	TitleEN   string `json:"title_en"`
	TitleAR   string `json:"title_ar"`
	BodyEN    string `json:"body_en"`
	BodyAR    string `json:"body_ar"`
	Image     string `json:"image"`
	VideoURL  string `json:"video_url"`
	Published bool   `json:"published" gorm:"default:true"`
}
