package domain

// Description returns the human-readable meaning of the phase.
func (p Phase) Description() string {
	switch p {
	case PhasePlanning:
		return "요구사항 정의 및 초기 설계"
	case PhaseWS:
		return "Working Sample - 동작 샘플"
	case PhasePT:
		return "Prototype - 시제품"
	case PhaseES:
		return "Engineering Sample - 엔지니어링 샘플"
	case PhasePP:
		return "Pre-Production - 사전 양산"
	case PhaseMP:
		return "Mass Production - 양산"
	}
	return ""
}

// Description returns the human-readable meaning of the domain.
func (d Domain) Description() string {
	switch d {
	case DomainOpticsARK:
		return "굴절검사 광학계"
	case DomainOpticsLM:
		return "렌즈미터 광학계"
	case DomainMechMoving:
		return "XYZ/턱받침 구동"
	case DomainHWBoard:
		return "Main/Sensor 보드"
	case DomainSWAlgo:
		return "영상처리/도수계산"
	case DomainSWUI:
		return "인터페이스"
	case DomainProjectCommon:
		return "프로젝트 공통"
	}
	return ""
}

// Description returns the human-readable meaning of the log type.
func (t LogType) Description() string {
	switch t {
	case LogTypeMeeting:
		return "주간회의"
	case LogTypeAlignment:
		return "광축 정렬 이슈"
	case LogTypeCalibration:
		return "보정값 문제"
	case LogTypeAccuracy:
		return "측정 정확도"
	case LogTypeBug:
		return "버그"
	case LogTypeDecision:
		return "의사결정"
	}
	return ""
}
