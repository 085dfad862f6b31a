package analysis

// Default word lists for Korean answer text. They are plain configuration:
// callers (and tests) can supply their own lists through the constructors.

// DefaultStopWords are particles, conjunctions and filler forms that carry no
// signal on their own
func DefaultStopWords() []string {
	return []string{
		"은", "는", "이", "가", "을", "를", "에", "의", "와", "과", "도", "로", "으로",
		"그리고", "그런데", "하지만", "그래서", "그러나", "또한", "또",
		"있어요", "있었어요", "했어요", "했었어요", "해요", "했어", "했었어",
		"예", "예를", "들면", "같아요", "같은", "같이",
		"때", "때문", "때문에", "때문이에요",
		"것", "것이", "것을", "것도", "것으로",
		"오늘", "내일", "어제", "그때",
	}
}

// DefaultPositiveKeywords match expressions of joy, pride and fun
func DefaultPositiveKeywords() []string {
	return []string{
		"기쁨", "기쁘", "즐거", "즐겁", "행복", "신나", "신남", "재미", "재밌",
		"좋아", "좋았", "멋져", "멋지", "자랑", "자랑스러", "뿌듯", "뿌듯해",
		"웃음", "웃었", "웃고", "웃어", "즐거워", "즐거웠",
	}
}

// DefaultNegativeKeywords match expressions of sadness, anger and worry
func DefaultNegativeKeywords() []string {
	return []string{
		"슬퍼", "슬프", "화나", "화났", "속상", "속상해", "답답", "답답해",
		"무서워", "무서웠", "무서운", "걱정", "걱정돼", "걱정됐",
		"힘들", "힘들어", "힘들었", "어려워", "어려웠", "어려운",
	}
}

// DefaultChallengeKeywords match expressions of trying, learning and growth
func DefaultChallengeKeywords() []string {
	return []string{
		"도전", "시도", "해봤", "해봤어", "새로운", "새로", "처음",
		"어려웠", "어려운", "어려워", "해결", "해결했", "해결해",
		"노력", "노력했", "노력해", "열심히", "열심", "성장", "성장했",
		"배웠", "배워", "배운", "학습", "학습했",
	}
}
