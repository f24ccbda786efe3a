package grade

import "math"

// 成绩派生字段的纯计算。提交保存时只要分数变化就必须重算，
// 保证 percentage / finalScore 与 (score, maxScore, isLate, latePenalty) 一致。

// Percentage 计算百分比得分，四舍五入到整数
func Percentage(score, maxScore int64) int64 {
	if maxScore <= 0 {
		return 0
	}
	return int64(math.Round(float64(score) / float64(maxScore) * 100))
}

// FinalScore 计算扣除迟交惩罚后的最终得分
// latePenalty 为百分比(0-100)，仅迟交时生效，结果不低于0
func FinalScore(score int64, isLate bool, latePenalty int64) int64 {
	if !isLate || latePenalty <= 0 {
		return score
	}
	final := float64(score) - float64(score)*float64(latePenalty)/100
	if final < 0 {
		return 0
	}
	return int64(final)
}

// Letter 按百分比映射等级
func Letter(percentage int64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// Average 已批改提交的平均分，四舍五入到整数
func Average(scores []int64) int64 {
	if len(scores) == 0 {
		return 0
	}
	var sum int64
	for _, s := range scores {
		sum += s
	}
	return int64(math.Round(float64(sum) / float64(len(scores))))
}

// Rate 计算百分比占比，分母为0时返回0
func Rate(part, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return int64(math.Round(float64(part) / float64(total) * 100))
}
