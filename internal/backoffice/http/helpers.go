package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aikidoconnect/backoffice/pkg/adminapi"
	"github.com/aikidoconnect/backoffice/pkg/httpx"
)

// validate checks struct tags on the adminapi request types.
var validate = validator.New()

// decodeJSON parses and validates a request body. On failure it writes the
// 400 response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Missing or malformed fields")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, code int, errCode, description string) {
	httpx.WriteJSON(w, code, adminapi.ErrorResponse{
		Error:            errCode,
		ErrorDescription: description,
	})
}

// requireAccountID pulls the authenticated account id from the context,
// writing a 401 when it is absent.
func requireAccountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httpx.AccountIDFromCtx(r.Context())
	if id == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return "", false
	}
	return id, true
}
