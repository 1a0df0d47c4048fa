package responses

type BMIPoint struct {
	RecordedAt string  `json:"recordedAt"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	BMI        float64 `json:"bmi"`
}

type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}
