package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dgallion1/docrtf/internal/memberlist"
)

// handleLocales lists the output languages the label catalog supports.
func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"default": s.language(""),
		"locales": s.catalog.Locales(),
	})
}

// handleMemberSections counts a YAML member manifest and returns the
// declaration sections a page for it would contain.
func (s *Server) handleMemberSections(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	q := r.URL.Query()
	policy := memberlist.CountPolicy{
		IncludeFriends: queryBool(q.Get("include_friends")),
		ExtractAll:     queryBool(q.Get("extract_all")),
	}
	list, err := memberlist.LoadManifest(r.Body, policy, s.log)
	if err != nil {
		jsonError(w, "invalid manifest: "+err.Error(), http.StatusBadRequest)
		return
	}

	declared := list.CountDeclared(queryBool(q.Get("in_group")))
	documented := list.CountDocumented()
	lang := s.language(q.Get("lang"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"language":   lang,
		"members":    list.Len(),
		"declared":   declared,
		"documented": documented,
		"sections":   memberlist.Sections(declared, s.catalog.For(lang)),
	})
}

func queryBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
