package assets

import (
	"atlas-assets/rest"
	"fmt"

	"github.com/Chronicle20/atlas-rest/requests"
)

const (
	Resource = "characters/%d/assets"
	ByPage   = Resource + "?page[number]=%d&page[size]=%d"
)

func getBaseRequest() string {
	return requests.RootUrl("ESI")
}

func requestByCharacterId(characterId uint32, page int) requests.Request[[]RestModel] {
	return rest.MakeGetRequest[[]RestModel](fmt.Sprintf(getBaseRequest()+ByPage, characterId, page, PageSize))
}
