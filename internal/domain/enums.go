package domain

// ExerciseType identifies one exercise of the catalogue.
type ExerciseType string

const (
	ExerciseCat                ExerciseType = "CAT"
	ExerciseCrab               ExerciseType = "CRAB"
	ExerciseCrunch             ExerciseType = "CRUNCH"
	ExerciseDips               ExerciseType = "DIPS"
	ExerciseJumpingJack        ExerciseType = "JUMPING_JACK"
	ExerciseLunge              ExerciseType = "LUNGE"
	ExerciseLyingSuperman      ExerciseType = "LYING_SUPERMAN"
	ExerciseMountainClimber    ExerciseType = "MOUNTAIN_CLIMBER"
	ExercisePlank              ExerciseType = "PLANK"
	ExercisePushUp             ExerciseType = "PUSH_UP"
	ExerciseSideLunge          ExerciseType = "SIDE_LUNGE"
	ExerciseSidePlank          ExerciseType = "SIDE_PLANK"
	ExerciseSquat              ExerciseType = "SQUAT"
	ExerciseStandingCrossTouch ExerciseType = "STANDING_CROSS_TOUCH"
)

// ExerciseTypes returns the catalogue in its canonical order.
func ExerciseTypes() []ExerciseType {
	return []ExerciseType{
		ExerciseCat, ExerciseCrab, ExerciseCrunch, ExerciseDips, ExerciseJumpingJack,
		ExerciseLunge, ExerciseLyingSuperman, ExerciseMountainClimber, ExercisePlank,
		ExercisePushUp, ExerciseSideLunge, ExerciseSidePlank, ExerciseSquat,
		ExerciseStandingCrossTouch,
	}
}

func (e ExerciseType) String() string { return string(e) }

func (e ExerciseType) IsValid() bool {
	for _, t := range ExerciseTypes() {
		if t == e {
			return true
		}
	}
	return false
}

// AppLanguage is the language the app is displayed in.
type AppLanguage string

const (
	LanguageSystemDefault AppLanguage = "SYSTEM_DEFAULT"
	LanguageEnglish       AppLanguage = "ENGLISH"
	LanguageFrench        AppLanguage = "FRENCH"
	LanguageGerman        AppLanguage = "GERMAN"
	LanguageSpanish       AppLanguage = "SPANISH"
	LanguageSwedish       AppLanguage = "SWEDISH"
)

func (l AppLanguage) String() string { return string(l) }

func (l AppLanguage) IsValid() bool {
	switch l {
	case LanguageSystemDefault, LanguageEnglish, LanguageFrench,
		LanguageGerman, LanguageSpanish, LanguageSwedish:
		return true
	}
	return false
}

// AppTheme selects the colour scheme.
type AppTheme string

const (
	ThemeFollowSystem AppTheme = "FOLLOW_SYSTEM"
	ThemeLight        AppTheme = "LIGHT"
	ThemeDark         AppTheme = "DARK"
)

func (t AppTheme) String() string { return string(t) }

func (t AppTheme) IsValid() bool {
	switch t {
	case ThemeFollowSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
