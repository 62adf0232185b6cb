package pin

import (
	"atlas-assets/rest"
	"net/http"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(si)
			r := router.PathPrefix("/characters/{characterId}/asset-tree/pins").Subrouter()
			r.HandleFunc("", registerGet("get_pins", handleGetPins(db))).Methods(http.MethodGet)
			r.HandleFunc("/{locationId}", registerGet("toggle_pin", handleTogglePin(db))).Methods(http.MethodPost)
			r.HandleFunc("/{locationId}", registerGet("delete_pin", handleDeletePin(db))).Methods(http.MethodDelete)
		}
	}
}

func handleGetPins(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				ms, err := NewProcessor(d.Logger(), d.Context(), db).GetByCharacterId(characterId)
				if err != nil {
					d.Logger().WithError(err).Errorf("Unable to retrieve pins for character [%d].", characterId)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				rms, err := model.SliceMap(Transform)(model.FixedProvider(ms))(model.ParallelMap())()
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rms)
			}
		})
	}
}

func handleDeletePin(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return rest.ParseLocationId(d.Logger(), func(locationId uint64) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					err := NewProcessor(d.Logger(), d.Context(), db).DeleteAndEmit(characterId, locationId)
					if err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}
					w.WriteHeader(http.StatusNoContent)
				}
			})
		})
	}
}

func handleTogglePin(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return rest.ParseLocationId(d.Logger(), func(locationId uint64) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					pinned, err := NewProcessor(d.Logger(), d.Context(), db).ToggleAndEmit(characterId, locationId)
					if err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					rm := RestModel{
						LocationId: locationId,
						Pinned:     pinned,
					}

					query := r.URL.Query()
					queryParams := jsonapi.ParseQueryFields(&query)
					server.MarshalResponse[RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
				}
			})
		})
	}
}
