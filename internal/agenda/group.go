package agenda

import (
	"sort"

	"github.com/fu0730/ai-life-planner/internal/model"
)

// BlockGroup is one time-of-day section of the agenda. Routines come
// before tasks; routines keep their stored order, tasks follow the sort
// policy.
type BlockGroup struct {
	Block    model.TimeBlock // BlockNone for the unscheduled section
	Tasks    []model.Task
	Routines []model.Routine
}

// GroupByBlock partitions agenda items into display sections ordered
// morning, forenoon, afternoon, night, unscheduled. Sections with no items
// are omitted entirely.
func GroupByBlock(tasks []model.Task, routines []model.Routine, by model.SortBy) []BlockGroup {
	taskBuckets := make(map[model.TimeBlock][]model.Task)
	for _, t := range tasks {
		taskBuckets[t.Block] = append(taskBuckets[t.Block], t)
	}
	routineBuckets := make(map[model.TimeBlock][]model.Routine)
	for _, r := range routines {
		routineBuckets[r.Block] = append(routineBuckets[r.Block], r)
	}

	order := append(append([]model.TimeBlock{}, model.Blocks...), model.BlockNone)
	out := make([]BlockGroup, 0, len(order))
	for _, block := range order {
		bucketTasks := taskBuckets[block]
		bucketRoutines := routineBuckets[block]
		if len(bucketTasks) == 0 && len(bucketRoutines) == 0 {
			continue
		}
		sort.SliceStable(bucketRoutines, func(i, j int) bool {
			return bucketRoutines[i].Order < bucketRoutines[j].Order
		})
		out = append(out, BlockGroup{
			Block:    block,
			Tasks:    model.SortTasks(bucketTasks, by),
			Routines: bucketRoutines,
		})
	}
	return out
}
