package station

import (
	"atlas-assets/rest"
	"fmt"
	"strconv"
	"strings"

	"github.com/Chronicle20/atlas-rest/requests"
)

const (
	Resource = "data/stations"
	ByIds    = Resource + "?filter[id]=%s"
)

func getBaseRequest() string {
	return requests.RootUrl("DATA")
}

func requestByIds(ids []uint64) requests.Request[[]RestModel] {
	ss := make([]string, 0, len(ids))
	for _, id := range ids {
		ss = append(ss, strconv.FormatUint(id, 10))
	}
	return rest.MakeGetRequest[[]RestModel](fmt.Sprintf(getBaseRequest()+ByIds, strings.Join(ss, ",")))
}
