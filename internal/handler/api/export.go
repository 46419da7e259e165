// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/olegiv/opres-go/internal/util"
)

// Export streams the current snapshot as a JSON download. The filename
// is derived from the presentation name.
func (h *Handler) Export(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Snapshot()

	filename := util.Slugify(snap.Presentation.Name)
	if filename == "" {
		filename = "presentation"
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".json"))
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		h.logger.Error("exporting snapshot", "error", err)
	}
}
