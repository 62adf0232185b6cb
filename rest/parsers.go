package rest

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type CharacterIdHandler func(characterId uint32) http.HandlerFunc

func ParseCharacterId(l logrus.FieldLogger, next CharacterIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := strconv.Atoi(mux.Vars(r)["characterId"])
		if err != nil {
			l.Errorf("Unable to properly parse characterId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(value))(w, r)
	}
}

type LocationIdHandler func(locationId uint64) http.HandlerFunc

func ParseLocationId(l logrus.FieldLogger, next LocationIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := strconv.ParseUint(mux.Vars(r)["locationId"], 10, 64)
		if err != nil {
			l.Errorf("Unable to properly parse locationId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(value)(w, r)
	}
}
