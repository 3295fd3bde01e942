package handlers

import (
	"net/http"

	"fuelstations/config"
	"fuelstations/middleware"
)

// The root endpoint issues tokens for a single fixed subject; there is no
// user store to authenticate against.
const defaultSubjectID = "1234567890"

// Root is the open bootstrap endpoint: it names the API and hands out a
// fresh token any caller can use against the protected routes.
func Root(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GenerateToken(defaultSubjectID)
	if err != nil {
		internalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"name": config.APIName,
		"jwt":  token,
	})
}
