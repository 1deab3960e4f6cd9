package assets

import (
	"net/http"
	"path"

	"github.com/spf13/afero"
)

// Responder serves files from a served root, mapping each request path to a
// filesystem entry relative to that root. File serving (index files,
// directory listings, conditional requests, 404 mapping) is delegated to
// net/http's FileServer; the responder only adds the MIME overrides and a
// method guard on top.
type Responder struct {
	table MIMETable
	files http.Handler
}

// NewResponder builds a responder over root. The table must not be mutated
// after this call.
func NewResponder(root afero.Fs, table MIMETable) *Responder {
	return &Responder{
		table: table,
		files: http.FileServer(afero.NewHttpFs(root)),
	}
}

func (sr *Responder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// FileServer serves any method as a read; the contract is read-only.
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// Pre-set Content-Type so ServeContent keeps it instead of deducing its
	// own. ContentType already falls back to the platform table for
	// extensions we do not override.
	if ext := path.Ext(r.URL.Path); ext != "" {
		w.Header().Set("Content-Type", sr.table.ContentType(ext))
	}

	sr.files.ServeHTTP(w, r)
}
