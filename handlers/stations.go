package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"fuelstations/config"
	"fuelstations/models"
)

// CreateStation inserts a station and, when the body carries a pumps list,
// one pump per entry stamped with the new station id. The pump inserts run
// concurrently; the first failure fails the whole response. Nothing is
// rolled back: the station row and any sibling pumps already written stay.
func CreateStation(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r.Body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if field := firstMissing(raw, stationRequired); field != "" {
		badRequest(w, missingFieldMessage(field))
		return
	}

	pumpsRaw, hasPumps := raw["pumps"]
	delete(raw, "pumps")

	var station models.Station
	if err := decodeInto(raw, &station); err != nil {
		internalError(w, err.Error())
		return
	}

	if err := models.CreateStation(config.DB, &station); err != nil {
		internalError(w, err.Error())
		return
	}

	if !hasPumps {
		writeJSON(w, http.StatusCreated, &station)
		return
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(pumpsRaw, &entries); err != nil {
		internalError(w, err.Error())
		return
	}

	pumps := make([]*models.Pump, len(entries))
	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			if firstMissing(entry, nestedPumpRequired) != "" {
				return errors.New(nestedPumpMessage)
			}
			var pump models.Pump
			if err := decodeInto(entry, &pump); err != nil {
				return err
			}
			// Ownership is stamped here; a caller-supplied station_id is
			// overridden by the id the store just assigned.
			pump.StationID = station.ID
			if err := models.CreatePump(config.DB, &pump); err != nil {
				return err
			}
			pumps[i] = &pump
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		internalError(w, err.Error())
		return
	}

	station.Pumps = pumps
	writeJSON(w, http.StatusCreated, &station)
}

// UpdateStation replaces a station row and reconciles a submitted pumps
// list: entries with an id and deleted: true are removed, entries with an
// id are replaced, entries without one are created. Pumps omitted from the
// list are left untouched. All sub-operations run concurrently with the
// same first-failure, no-rollback join as CreateStation.
func UpdateStation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	raw, err := decodeBody(r.Body)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if field := firstMissing(raw, stationRequired); field != "" {
		badRequest(w, missingFieldMessage(field))
		return
	}

	pumpsRaw, hasPumps := raw["pumps"]
	delete(raw, "pumps")

	var station models.Station
	if err := decodeInto(raw, &station); err != nil {
		internalError(w, err.Error())
		return
	}

	updated, err := models.UpdateStationByID(config.DB, id, &station)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w, fmt.Sprintf("Not found Station with ID %s.", id))
		} else {
			internalError(w, err.Error())
		}
		return
	}

	if !hasPumps {
		writeJSON(w, http.StatusOK, updated)
		return
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(pumpsRaw, &entries); err != nil {
		internalError(w, err.Error())
		return
	}

	// Deletions resolve to a nil placeholder so result order still mirrors
	// the submitted list.
	results := make([]*models.Pump, len(entries))
	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			if firstMissing(entry, nestedPumpRequired) != "" {
				return errors.New(nestedPumpMessage)
			}

			idStr, hasID := entryID(entry)
			if hasID && entryDeleted(entry) {
				if err := models.RemovePump(config.DB, idStr); err != nil && !errors.Is(err, models.ErrNotFound) {
					return err
				}
				return nil
			}

			var pump models.Pump
			if err := decodeInto(entry, &pump); err != nil {
				return err
			}
			pump.StationID = stationIDFromPath(id)

			if hasID {
				replaced, err := models.UpdatePumpByID(config.DB, idStr, &pump)
				if err != nil {
					return err
				}
				results[i] = replaced
				return nil
			}

			if err := models.CreatePump(config.DB, &pump); err != nil {
				return err
			}
			results[i] = &pump
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		internalError(w, err.Error())
		return
	}

	updated.Pumps = results
	writeJSON(w, http.StatusOK, updated)
}

// GetAllStations lists every station with its pumps attached. The per-
// station pump fetches run concurrently; any failure fails the whole list.
func GetAllStations(w http.ResponseWriter, r *http.Request) {
	stations, err := models.AllStations(config.DB)
	if err != nil {
		internalError(w, err.Error())
		return
	}

	var g errgroup.Group
	for _, station := range stations {
		g.Go(func() error {
			pumps, err := models.PumpsByStationID(config.DB, strconv.FormatUint(uint64(station.ID), 10))
			if err != nil {
				return err
			}
			station.Pumps = pumps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		internalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stations": stations})
}

// GetStation fetches one station with its pumps. A pump-store ErrNotFound
// is tolerated here: a station without pumps is still a valid station.
func GetStation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	station, err := models.FindStationByID(config.DB, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w, fmt.Sprintf("Not found Station with ID %s.", id))
		} else {
			internalError(w, err.Error())
		}
		return
	}

	pumps, err := models.PumpsByStationID(config.DB, id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			internalError(w, err.Error())
			return
		}
	} else {
		station.Pumps = pumps
	}

	writeJSON(w, http.StatusOK, station)
}

// DeleteStation removes a station's pumps first, then the station itself.
// ErrNotFound from the pump cascade means the station simply had no pumps
// and is ignored; any other pump failure aborts before the station row is
// touched.
func DeleteStation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := models.DeletePumpsByStationID(config.DB, id); err != nil && !errors.Is(err, models.ErrNotFound) {
		internalError(w, fmt.Sprintf("Could not delete Station with ID %s because of an error with the pumps under it.", id))
		return
	}

	if err := models.RemoveStation(config.DB, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			notFound(w, fmt.Sprintf("Not found Station with ID %s.", id))
		} else {
			internalError(w, fmt.Sprintf("Could not delete Station with ID %s", id))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Station with ID %s was deleted successfully!", id),
	})
}

func stationIDFromPath(id string) uint {
	n, _ := strconv.ParseUint(id, 10, 64)
	return uint(n)
}
