package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/nictagadm/pkg/config"
	"github.com/NVIDIA/nictagadm/pkg/defaults"
	"github.com/NVIDIA/nictagadm/pkg/diag"
	cerrors "github.com/NVIDIA/nictagadm/pkg/errors"
	"github.com/NVIDIA/nictagadm/pkg/nictag"
	"github.com/NVIDIA/nictagadm/pkg/serializer"
	"github.com/NVIDIA/nictagadm/pkg/server"
)

// NicTag is one tag and the MAC address it names.
type NicTag struct {
	Name string `json:"name" yaml:"name"`
	MAC  string `json:"mac" yaml:"mac"`
}

// NicTagList is the body of GET /v1/nictags.
type NicTagList struct {
	Items []NicTag `json:"items" yaml:"items"`
}

// EtherstubList is the body of GET /v1/etherstubs.
type EtherstubList struct {
	Items []string `json:"items" yaml:"items"`
}

// DiagnosticList is the body of GET /v1/diagnostics.
type DiagnosticList struct {
	Items []diag.Diagnostic `json:"items" yaml:"items"`
}

// Handler serves read-only views of the provisioning config. The config is
// re-read on every request so edits are visible without a restart.
type Handler struct {
	ConfigPath    string
	MaxLineLength int
}

// NewHandler creates a Handler for the default config location.
func NewHandler() *Handler {
	return &Handler{
		ConfigPath:    defaults.ConfigPath,
		MaxLineLength: defaults.MaxLineLength,
	}
}

// Routes returns the API routes served by h.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/nictags":        h.HandleNicTags,
		"/v1/nictags/{name}": h.HandleNicTag,
		"/v1/etherstubs":     h.HandleEtherstubs,
		"/v1/diagnostics":    h.HandleDiagnostics,
	}
}

// load parses the config and resolves it. The returned diagnostics cover
// skipped lines first, in line order, then skipped MAC values in tag order.
// Every request re-reads the file, so skipped input is logged at debug level
// only; GET /v1/diagnostics is where clients see it.
func (h *Handler) load(ctx context.Context) (*nictag.Resolution, []diag.Diagnostic, error) {
	parsed := &diag.Collector{}
	store, err := config.Load(ctx, h.ConfigPath,
		config.WithMaxLineLength(h.MaxLineLength),
		config.WithReporter(diag.Multi(parsed, diag.LogLevel(nil, slog.LevelDebug))),
	)
	if err != nil {
		return nil, nil, err
	}

	res := nictag.Resolve(store, nictag.WithReporter(diag.LogLevel(nil, slog.LevelDebug)))
	return res, append(parsed.Diagnostics(), res.Diagnostics...), nil
}

// HandleNicTags handles GET /v1/nictags. The optional mac query parameter
// restricts the list to tags naming that address.
func (h *Handler) HandleNicTags(w http.ResponseWriter, r *http.Request) {
	res, _, err := h.load(r.Context())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to load nic tags", nil)
		return
	}

	names := res.Tags.Names()
	if mac := r.URL.Query().Get("mac"); mac != "" {
		norm, err := nictag.NormalizeMAC(mac)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, cerrors.ErrCodeInvalidRequest,
				"invalid mac query parameter", false, map[string]any{"mac": mac})
			return
		}
		names = res.Tags.NamesFor(norm)
	}

	list := NicTagList{Items: make([]NicTag, 0, len(names))}
	for _, name := range names {
		list.Items = append(list.Items, NicTag{Name: name, MAC: res.Tags[name]})
	}

	serializer.RespondJSONFor(w, r, http.StatusOK, list)
}

// HandleNicTag handles GET /v1/nictags/{name}.
func (h *Handler) HandleNicTag(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	res, _, err := h.load(r.Context())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to load nic tags", nil)
		return
	}

	mac, ok := res.Tags[name]
	if !ok {
		details := map[string]any{"name": name}
		if s, ok := res.Tags.Suggest(name); ok {
			details["suggestion"] = s
		}
		server.WriteError(w, r, http.StatusNotFound, cerrors.ErrCodeNotFound,
			"nic tag not found", false, details)
		return
	}

	serializer.RespondJSONFor(w, r, http.StatusOK, NicTag{Name: name, MAC: mac})
}

// HandleEtherstubs handles GET /v1/etherstubs.
func (h *Handler) HandleEtherstubs(w http.ResponseWriter, r *http.Request) {
	res, _, err := h.load(r.Context())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to load etherstubs", nil)
		return
	}

	serializer.RespondJSONFor(w, r, http.StatusOK, EtherstubList{Items: res.Etherstubs})
}

// HandleDiagnostics handles GET /v1/diagnostics.
func (h *Handler) HandleDiagnostics(w http.ResponseWriter, r *http.Request) {
	_, diags, err := h.load(r.Context())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to load diagnostics", nil)
		return
	}

	if diags == nil {
		diags = []diag.Diagnostic{}
	}

	serializer.RespondJSONFor(w, r, http.StatusOK, DiagnosticList{Items: diags})
}
