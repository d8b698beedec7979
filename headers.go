package netkit

// Common content-type values and ready-made header lines for RawHeader
// blocks.
const (
	JSONContentType      = "application/json"
	TextContentType      = "text/plain"
	MultipartContentType = "multipart/form-data"
	XMLContentType       = "application/xml"
	HTMLContentType      = "text/html"
	PNGContentType       = "image/png"
	JPEGContentType      = "image/jpeg"
	GIFContentType       = "image/gif"
	SVGContentType       = "image/svg+xml"

	JSONContentHeader      = "Content-Type: application/json"
	TextContentHeader      = "Content-Type: text/plain"
	MultipartContentHeader = "Content-Type: multipart/form-data"
	XMLContentHeader       = "Content-Type: application/xml"
	HTMLContentHeader      = "Content-Type: text/html"
	PNGContentHeader       = "Content-Type: image/png"
	JPEGContentHeader      = "Content-Type: image/jpeg"
	GIFContentHeader       = "Content-Type: image/gif"
	SVGContentHeader       = "Content-Type: image/svg+xml"
)
