package structure

import (
	"atlas-assets/rest"
	"fmt"

	"github.com/Chronicle20/atlas-rest/requests"
)

const (
	Resource = "data/structures"
	ById     = Resource + "/%d"
)

func getBaseRequest() string {
	return requests.RootUrl("ESI")
}

// Structure lookups cannot be batched; player-built installations resolve
// one network call at a time.
func requestById(structureId uint64) requests.Request[RestModel] {
	return rest.MakeGetRequest[RestModel](fmt.Sprintf(getBaseRequest()+ById, structureId))
}
