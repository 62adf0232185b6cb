package tree

import (
	"atlas-assets/asset"
	"atlas-assets/grouping"
	"atlas-assets/rest"
	"atlas-assets/search"
	"context"
	"errors"
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
			r := router.PathPrefix("/characters/{characterId}/asset-tree").Subrouter()
			r.HandleFunc("", registerGet("get_asset_tree", handleGetTree(db))).Methods(http.MethodGet)
			r.HandleFunc("", registerGet("build_asset_tree", handleBuildTree(db))).Methods(http.MethodPost)
			r.HandleFunc("", registerGet("clear_asset_tree", handleClearTree(db))).Methods(http.MethodDelete)
			r.HandleFunc("/locations/{locationId}", registerGet("get_location_assets", handleGetLocationAssets(db))).Methods(http.MethodGet)
			r.HandleFunc("/search", registerGet("search_asset_tree", handleSearch(db))).Methods(http.MethodGet)
		}
	}
}

func handleGetTree(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				p := NewProcessor(d.Logger(), d.Context(), db)
				st, ok := p.Overview(characterId)
				if !ok {
					w.WriteHeader(http.StatusNotFound)
					return
				}

				var pinned []asset.Model
				var groups []grouping.RegionGroup
				if st.Loaded() {
					var err error
					pinned, groups, err = p.PinnedAndRegionRoots(characterId)
					if err != nil {
						d.Logger().WithError(err).Errorf("Unable to arrange asset tree roots for character [%d].", characterId)
						w.WriteHeader(http.StatusInternalServerError)
						return
					}
				}

				rm, err := Transform(characterId, st, pinned, groups)
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rm)
			}
		})
	}
}

func handleBuildTree(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				force := r.URL.Query().Get("force") == "true"
				l := d.Logger()
				ctx := context.WithoutCancel(d.Context())
				go func() {
					_, err := NewProcessor(l, ctx, db).BuildAndEmit(characterId, force, KafkaProgressFunc(l, ctx, characterId))
					if err != nil && !errors.Is(err, ErrBuildInProgress) {
						l.WithError(err).Errorf("Unable to build asset tree for character [%d].", characterId)
					}
				}()
				w.WriteHeader(http.StatusAccepted)
			}
		})
	}
}

func handleClearTree(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				err := NewProcessor(d.Logger(), d.Context(), db).Clear(characterId)
				if err != nil {
					d.Logger().WithError(err).Errorf("Unable to clear asset tree for character [%d].", characterId)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			}
		})
	}
}

func handleGetLocationAssets(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return rest.ParseLocationId(d.Logger(), func(locationId uint64) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					sections, err := NewProcessor(d.Logger(), d.Context(), db).GroupedAssets(characterId, locationId)
					if errors.Is(err, ErrNotLoaded) || errors.Is(err, ErrUnknownLocation) {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					if err != nil {
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					rms, err := model.SliceMap(grouping.Transform)(model.FixedProvider(sections))(model.ParallelMap())()
					if err != nil {
						d.Logger().WithError(err).Errorf("Creating REST model.")
						w.WriteHeader(http.StatusInternalServerError)
						return
					}

					query := r.URL.Query()
					queryParams := jsonapi.ParseQueryFields(&query)
					server.MarshalResponse[[]grouping.RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rms)
				}
			})
		})
	}
}

func handleSearch(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				results, st, err := NewProcessor(d.Logger(), d.Context(), db).Search(characterId, r.URL.Query().Get("query"))
				if errors.Is(err, ErrNotLoaded) {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				rms, err := model.SliceMap(search.TransformWith(st.DisplayName))(model.FixedProvider(results))(model.ParallelMap())()
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]search.RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(rms)
			}
		})
	}
}
