package scheduler

import (
	"sort"
	"time"

	"github.com/nishida-sj/shift-management-system-sub000/internal/model"
)

// 候选人排序权重
const (
	// WeightPriority 优先员工标记的得分
	WeightPriority = 1000
	// WeightMainBusiness 主业务匹配的得分（启用「主业务优先」时）
	WeightMainBusiness = 100
	// WeightWorkloadBase 工作量均衡基数：得分为 base - 当月累计小时数
	WeightWorkloadBase = 50
	// WeightPreference 当日提交过非休假希望的得分（启用「尊重时间希望」时）
	WeightPreference = 20
)

// RankCandidates 按加权得分对候选池降序排序，返回新切片，不修改入参。
// 同分保持入参顺序（稳定排序）。
// mainPool 表示该池为主业务匹配池（得 WeightMainBusiness 加分）。
//
// 优先员工不参与工作量均衡加分：优先标记本身已凌驾于均衡考量之上。
// 时间希望加分只看「是否提交过非休假希望」，不看希望是否匹配时段。
func RankCandidates(sess *BuildSession, pool []model.Employee, date time.Time, mainPool bool) []model.Employee {
	ranked := make([]model.Employee, len(pool))
	copy(ranked, pool)

	scores := make(map[string]float64, len(ranked))
	for _, emp := range ranked {
		scores[emp.Code] = candidateScore(sess, &emp, date, mainPool)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].Code] > scores[ranked[j].Code]
	})
	return ranked
}

func candidateScore(sess *BuildSession, emp *model.Employee, date time.Time, mainPool bool) float64 {
	var score float64

	if emp.Priority {
		score += WeightPriority
	}

	if sess.Settings.PrioritizeMainBusiness && mainPool {
		score += WeightMainBusiness
	}

	if sess.Settings.BalanceWorkload && !emp.Priority {
		var hours float64
		if w, ok := sess.Workload[emp.Code]; ok {
			hours = w.TotalHours
		}
		score += WeightWorkloadBase - hours
	}

	if sess.Settings.RespectTimePreferences {
		if req, ok := sess.RequestFor(emp.Code, date); ok && !req.IsOff && req.TimeRange != "" {
			score += WeightPreference
		}
	}

	return score
}
