package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"fuelstations/config"
	"fuelstations/models"
)

func CreatePump(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r.Body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if field := firstMissing(raw, pumpRequired); field != "" {
		badRequest(w, missingFieldMessage(field))
		return
	}

	var pump models.Pump
	if err := decodeInto(raw, &pump); err != nil {
		internalError(w, err.Error())
		return
	}

	if err := models.CreatePump(config.DB, &pump); err != nil {
		internalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, &pump)
}

func UpdatePump(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	raw, err := decodeBody(r.Body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if field := firstMissing(raw, pumpRequired); field != "" {
		badRequest(w, missingFieldMessage(field))
		return
	}

	if _, err := models.FindPumpByID(config.DB, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w, fmt.Sprintf("Not found Pump with ID %s.", id))
		} else {
			internalError(w, err.Error())
		}
		return
	}

	var pump models.Pump
	if err := decodeInto(raw, &pump); err != nil {
		internalError(w, err.Error())
		return
	}

	updated, err := models.UpdatePumpByID(config.DB, id, &pump)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w, fmt.Sprintf("Not found Pump with ID %s.", id))
		} else {
			internalError(w, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func DeletePump(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := models.RemovePump(config.DB, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w, fmt.Sprintf("Not found Pump with ID %s.", id))
		} else {
			internalError(w, fmt.Sprintf("Could not delete Pump with ID %s", id))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Pump with ID %s was deleted successfully!", id),
	})
}
