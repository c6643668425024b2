package domain

// Task is one of the four recommendation outcomes.
type Task string

const (
	TaskBreakCounseling Task = "Take a Break / Counseling"
	TaskDeepWork        Task = "Deep Work (Coding)"
	TaskLightAdmin      Task = "Light Admin (Email)"
	TaskBrainstorming   Task = "Brainstorming Session"
)

// Tasks lists every possible recommendation outcome.
var Tasks = []Task{TaskBreakCounseling, TaskDeepWork, TaskLightAdmin, TaskBrainstorming}

// trainingExample is one labeled (category index, workload) pair.
type trainingExample struct {
	category int
	workload int
	task     Task
}

// trainingSet is the fixed labeled dataset the decision tree is induced
// from. Category encoding follows MoodCategory.Index.
var trainingSet = []trainingExample{
	{category: 0, workload: 8, task: TaskBreakCounseling},
	{category: 1, workload: 2, task: TaskBrainstorming},
	{category: 2, workload: 7, task: TaskBreakCounseling},
	{category: 3, workload: 5, task: TaskLightAdmin},
	{category: 1, workload: 9, task: TaskDeepWork},
	{category: 0, workload: 3, task: TaskLightAdmin},
	{category: 2, workload: 3, task: TaskLightAdmin},
	{category: 3, workload: 8, task: TaskDeepWork},
}

const (
	featureCategory = 0
	featureWorkload = 1
)

type treeNode struct {
	task      Task // valid when leaf
	leaf      bool
	feature   int
	threshold float64
	left      *treeNode // feature value <= threshold
	right     *treeNode
}

// Recommender is an immutable decision procedure mapping a mood category and
// workload level to a task. It is trained once at startup and injected
// wherever recommendations are needed, never held as global state.
type Recommender struct {
	root *treeNode
}

// TrainRecommender induces a binary classification tree over the fixed
// training set using Gini impurity. Induction is fully deterministic:
// features are scanned in declaration order, candidate thresholds ascending,
// and a split is adopted only when it strictly lowers the weighted impurity.
func TrainRecommender() Recommender {
	return Recommender{root: growTree(trainingSet)}
}

// Recommend returns the task for the given category and workload. Pure and
// total: every category paired with a workload in range yields one of the
// four tasks, and repeated calls are identical.
func (r Recommender) Recommend(category MoodCategory, workload WorkloadLevel) Task {
	point := [2]float64{float64(category.Index()), float64(workload)}

	node := r.root
	for !node.leaf {
		if point[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}

	return node.task
}

func growTree(samples []trainingExample) *treeNode {
	if task, pure := singleTask(samples); pure {
		return &treeNode{leaf: true, task: task}
	}

	feature, threshold, ok := bestSplit(samples)
	if !ok {
		return &treeNode{leaf: true, task: majorityTask(samples)}
	}

	var left, right []trainingExample
	for _, sample := range samples {
		if featureValue(sample, feature) <= threshold {
			left = append(left, sample)
		} else {
			right = append(right, sample)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(left),
		right:     growTree(right),
	}
}

func bestSplit(samples []trainingExample) (feature int, threshold float64, ok bool) {
	bestImpurity := gini(samples)

	for _, candidate := range []int{featureCategory, featureWorkload} {
		for _, t := range candidateThresholds(samples, candidate) {
			var left, right []trainingExample
			for _, sample := range samples {
				if featureValue(sample, candidate) <= t {
					left = append(left, sample)
				} else {
					right = append(right, sample)
				}
			}
			if len(left) == 0 || len(right) == 0 {
				continue
			}

			total := float64(len(samples))
			weighted := float64(len(left))/total*gini(left) + float64(len(right))/total*gini(right)
			if weighted < bestImpurity {
				bestImpurity = weighted
				feature = candidate
				threshold = t
				ok = true
			}
		}
	}

	return feature, threshold, ok
}

// candidateThresholds returns midpoints between consecutive distinct values
// of the feature, ascending.
func candidateThresholds(samples []trainingExample, feature int) []float64 {
	seen := map[float64]struct{}{}
	var values []float64
	for _, sample := range samples {
		v := featureValue(sample, feature)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}

	thresholds := make([]float64, 0, len(values))
	for i := 0; i+1 < len(values); i++ {
		thresholds = append(thresholds, (values[i]+values[i+1])/2)
	}
	return thresholds
}

func featureValue(sample trainingExample, feature int) float64 {
	if feature == featureCategory {
		return float64(sample.category)
	}
	return float64(sample.workload)
}

func gini(samples []trainingExample) float64 {
	counts := map[Task]int{}
	for _, sample := range samples {
		counts[sample.task]++
	}

	impurity := 1.0
	total := float64(len(samples))
	for _, count := range counts {
		p := float64(count) / total
		impurity -= p * p
	}
	return impurity
}

func singleTask(samples []trainingExample) (Task, bool) {
	task := samples[0].task
	for _, sample := range samples[1:] {
		if sample.task != task {
			return "", false
		}
	}
	return task, true
}

// majorityTask breaks count ties by the declaration order of Tasks.
func majorityTask(samples []trainingExample) Task {
	counts := map[Task]int{}
	for _, sample := range samples {
		counts[sample.task]++
	}

	best := samples[0].task
	bestCount := 0
	for _, task := range Tasks {
		if counts[task] > bestCount {
			best = task
			bestCount = counts[task]
		}
	}
	return best
}
