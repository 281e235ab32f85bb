package handle

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"lang-detect/api/internal/app"
	"lang-detect/api/internal/extract"
)

func (h *Handle) Index(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "upload.html", nil)
}

type resultPage struct {
	FileName string
	Size     int64
	app.Outcome
}

// Analyze takes a multipart upload in field "file" and renders the result page.
func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, extract.MaxSize+1<<20)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		renderPage(w, http.StatusBadRequest, "upload.html", map[string]string{"Error": "bad form: " + err.Error()})
		return
	}
	f, fh, err := r.FormFile("file")
	if err != nil {
		renderPage(w, http.StatusBadRequest, "upload.html", map[string]string{"Error": "file is required"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		renderPage(w, http.StatusBadRequest, "upload.html", map[string]string{"Error": "read: " + err.Error()})
		return
	}
	text, err := extract.FromBytes(fh.Filename, data)
	if err != nil {
		renderPage(w, extractStatus(err), "upload.html", map[string]string{"Error": err.Error()})
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	out, err := h.app.Process(ctx, nil, fh.Filename, text, true)
	if err != nil {
		log.Printf("analyze %q: %v", fh.Filename, err)
		renderPage(w, http.StatusInternalServerError, "upload.html", map[string]string{"Error": "analysis failed"})
		return
	}
	if out.ReportPath != "" {
		log.Printf("report saved: %s", out.ReportPath)
	}
	renderPage(w, http.StatusOK, "result.html", resultPage{FileName: fh.Filename, Size: int64(len(data)), Outcome: out})
}

type AnalyzeRequest struct {
	Text string `json:"text"`
	Name string `json:"name"`
}

// AnalyzeJSON classifies raw text posted as JSON.
func (h *Handle) AnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, extract.MaxSize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		req.Name = "document"
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	out, err := h.app.Process(ctx, nil, req.Name, req.Text, true)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "analyze error: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func extractStatus(err error) int {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, extract.ErrNoText):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
