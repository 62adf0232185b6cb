package tree

type Stage string

const (
	StageLoading               = Stage("LOADING")
	StageBuildingTree          = Stage("BUILDING_TREE")
	StageProcessingLocations   = Stage("PROCESSING_LOCATIONS")
	StageFetchingStructureInfo = Stage("FETCHING_STRUCTURE_INFO")
	StagePreparingContainers   = Stage("PREPARING_CONTAINERS")
	StageLoadingNames          = Stage("LOADING_NAMES")
	StageSavingCache           = Stage("SAVING_CACHE")
	StageCompleted             = Stage("COMPLETED")
)

// Status is one step of the build pipeline. Statuses are delivered in the
// fixed stage order and never move backward within a build.
type Status struct {
	stage   Stage
	page    int
	current int
	total   int
}

func (s Status) Stage() Stage {
	return s.stage
}

// Page is the 1-based page being fetched; only set during StageLoading.
func (s Status) Page() int {
	return s.page
}

func (s Status) Current() int {
	return s.current
}

func (s Status) Total() int {
	return s.total
}

func LoadingStatus(page int) Status {
	return Status{stage: StageLoading, page: page}
}

func BuildingTreeStatus() Status {
	return Status{stage: StageBuildingTree}
}

func ProcessingLocationsStatus() Status {
	return Status{stage: StageProcessingLocations}
}

func FetchingStructureInfoStatus(current int, total int) Status {
	return Status{stage: StageFetchingStructureInfo, current: current, total: total}
}

func PreparingContainersStatus() Status {
	return Status{stage: StagePreparingContainers}
}

func LoadingNamesStatus(current int, total int) Status {
	return Status{stage: StageLoadingNames, current: current, total: total}
}

func SavingCacheStatus() Status {
	return Status{stage: StageSavingCache}
}

func CompletedStatus() Status {
	return Status{stage: StageCompleted}
}

// ProgressFunc receives the ordered stream of build statuses. Delivery
// mechanism is up to the caller; the pipeline only guarantees ordering.
type ProgressFunc func(s Status)
