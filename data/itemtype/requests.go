package itemtype

import (
	"atlas-assets/rest"
	"fmt"
	"strconv"
	"strings"

	"github.com/Chronicle20/atlas-rest/requests"
)

const (
	Resource = "data/types"
	ByIds    = Resource + "?filter[id]=%s"
)

func getBaseRequest() string {
	return requests.RootUrl("DATA")
}

func requestByIds(ids []uint32) requests.Request[[]RestModel] {
	ss := make([]string, 0, len(ids))
	for _, id := range ids {
		ss = append(ss, strconv.FormatUint(uint64(id), 10))
	}
	return rest.MakeGetRequest[[]RestModel](fmt.Sprintf(getBaseRequest()+ByIds, strings.Join(ss, ",")))
}
