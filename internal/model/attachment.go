package model

// ContentTypePDF is the media type of every rendered document.
const ContentTypePDF = "application/pdf"

// Attachment is a rendered document ready to be sent as a download.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
