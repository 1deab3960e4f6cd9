package assets

import "mime"

// MIMETable maps a file extension (with leading dot) to the Content-Type
// value used when serving a file with that extension. It is built once at
// startup and read-only afterwards.
type MIMETable map[string]string

// DefaultMIMETable returns the table of extensions the platform either does
// not know or maps to the wrong type for 3D model assets.
func DefaultMIMETable() MIMETable {
	return MIMETable{
		".gltf": "model/gltf+json",
		".glb":  "model/gltf-binary",
		".bin":  "application/octet-stream",
	}
}

// ContentType resolves ext against the table, then the platform default
// table, then falls back to a generic binary type.
func (t MIMETable) ContentType(ext string) string {
	if ct, ok := t[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
