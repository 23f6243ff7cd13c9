// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// notFound serves the single page app for unknown non-API GET requests when
// a static directory is configured. A path without a matching file falls
// back to index.html so that client-side routes survive a reload.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if h.staticDir == "" || isAPIPath(r.URL.Path) ||
		(r.Method != http.MethodGet && r.Method != http.MethodHead) {
		writeError(w, r, ErrRouteNotFound)
		return
	}

	name := filepath.Join(h.staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	index := filepath.Join(h.staticDir, indexFile)
	if _, err := os.Stat(index); err != nil {
		writeError(w, r, ErrRouteNotFound)
		return
	}
	http.ServeFile(w, r, index)
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
