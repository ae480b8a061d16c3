package texcomp

// Encoder presets, identical to ispc_texcomp's GetProfile_* initialisers.
// Each preset assigns every field it governs; it never merges.

func profileUltraFast(s *BC7EncSettings) {
	s.Channels = 3

	// mode 0, 2
	s.ModeSelection[0] = false
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	// mode 1, 3
	s.ModeSelection[1] = false
	s.FastSkipTresholdMode1 = 3
	s.FastSkipTresholdMode3 = 1
	s.FastSkipTresholdMode7 = 0
	s.RefineIterations[1] = 2
	s.RefineIterations[3] = 1

	// mode 4, 5
	s.ModeSelection[2] = false
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 0
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	// mode 6
	s.ModeSelection[3] = true
	s.RefineIterations[6] = 1
}

func profileVeryFast(s *BC7EncSettings) {
	s.Channels = 3

	s.ModeSelection[0] = false
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 3
	s.FastSkipTresholdMode3 = 1
	s.FastSkipTresholdMode7 = 0
	s.RefineIterations[1] = 2
	s.RefineIterations[3] = 1

	s.ModeSelection[2] = false
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 0
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 1
}

func profileFast(s *BC7EncSettings) {
	s.Channels = 3

	s.ModeSelection[0] = false
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 12
	s.FastSkipTresholdMode3 = 4
	s.FastSkipTresholdMode7 = 0
	s.RefineIterations[1] = 2
	s.RefineIterations[3] = 1

	s.ModeSelection[2] = false
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 0
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2
}

func profileBasic(s *BC7EncSettings) {
	s.Channels = 3

	s.ModeSelection[0] = true
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 8 + 4
	s.FastSkipTresholdMode3 = 8
	s.FastSkipTresholdMode7 = 0
	s.RefineIterations[1] = 2
	s.RefineIterations[3] = 2

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 2
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2
}

func profileSlow(s *BC7EncSettings) {
	s.Channels = 3

	const moreRefine = 2
	s.ModeSelection[0] = true
	s.SkipMode2 = false
	s.RefineIterations[0] = 2 + moreRefine
	s.RefineIterations[2] = 2 + moreRefine

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 64
	s.FastSkipTresholdMode3 = 64
	s.FastSkipTresholdMode7 = 0
	s.RefineIterations[1] = 2 + moreRefine
	s.RefineIterations[3] = 2 + moreRefine

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 2 + moreRefine
	s.RefineIterations[4] = 2 + moreRefine
	s.RefineIterations[5] = 2 + moreRefine

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2 + moreRefine
}

func profileAlphaUltraFast(s *BC7EncSettings) {
	s.Channels = 4

	s.ModeSelection[0] = false
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	// mode 1, 3, 7
	s.ModeSelection[1] = false
	s.FastSkipTresholdMode1 = 0
	s.FastSkipTresholdMode3 = 0
	s.FastSkipTresholdMode7 = 4
	s.RefineIterations[1] = 1
	s.RefineIterations[3] = 1
	s.RefineIterations[7] = 2

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 3
	s.RefineIterationsChannel = 1
	s.RefineIterations[4] = 1
	s.RefineIterations[5] = 1

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2
}

func profileAlphaVeryFast(s *BC7EncSettings) {
	s.Channels = 4

	s.ModeSelection[0] = false
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 0
	s.FastSkipTresholdMode3 = 0
	s.FastSkipTresholdMode7 = 4
	s.RefineIterations[1] = 1
	s.RefineIterations[3] = 1
	s.RefineIterations[7] = 2

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 3
	s.RefineIterationsChannel = 2
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2
}

func profileAlphaFast(s *BC7EncSettings) {
	s.Channels = 4

	s.ModeSelection[0] = false
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 4
	s.FastSkipTresholdMode3 = 4
	s.FastSkipTresholdMode7 = 8
	s.RefineIterations[1] = 1
	s.RefineIterations[3] = 1
	s.RefineIterations[7] = 2

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 3
	s.RefineIterationsChannel = 2
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2
}

func profileAlphaBasic(s *BC7EncSettings) {
	s.Channels = 4

	s.ModeSelection[0] = true
	s.SkipMode2 = true
	s.RefineIterations[0] = 2
	s.RefineIterations[2] = 2

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 8 + 4
	s.FastSkipTresholdMode3 = 8
	s.FastSkipTresholdMode7 = 8
	s.RefineIterations[1] = 2
	s.RefineIterations[3] = 2
	s.RefineIterations[7] = 2

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 2
	s.RefineIterations[4] = 2
	s.RefineIterations[5] = 2

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2
}

func profileAlphaSlow(s *BC7EncSettings) {
	s.Channels = 4

	const moreRefine = 2
	s.ModeSelection[0] = true
	s.SkipMode2 = false
	s.RefineIterations[0] = 2 + moreRefine
	s.RefineIterations[2] = 2 + moreRefine

	s.ModeSelection[1] = true
	s.FastSkipTresholdMode1 = 64
	s.FastSkipTresholdMode3 = 64
	s.FastSkipTresholdMode7 = 64
	s.RefineIterations[1] = 2 + moreRefine
	s.RefineIterations[3] = 2 + moreRefine
	s.RefineIterations[7] = 2 + moreRefine

	s.ModeSelection[2] = true
	s.Mode45Channel0 = 0
	s.RefineIterationsChannel = 2 + moreRefine
	s.RefineIterations[4] = 2 + moreRefine
	s.RefineIterations[5] = 2 + moreRefine

	s.ModeSelection[3] = true
	s.RefineIterations[6] = 2 + moreRefine
}

func profileBC6HVeryFast(s *BC6HEncSettings) {
	s.SlowMode = false
	s.FastMode = true
	s.FastSkipTreshold = 0
	s.RefineIterations1p = 0
	s.RefineIterations2p = 0
}

func profileBC6HFast(s *BC6HEncSettings) {
	s.SlowMode = false
	s.FastMode = true
	s.FastSkipTreshold = 2
	s.RefineIterations1p = 0
	s.RefineIterations2p = 1
}

func profileBC6HBasic(s *BC6HEncSettings) {
	s.SlowMode = false
	s.FastMode = false
	s.FastSkipTreshold = 4
	s.RefineIterations1p = 2
	s.RefineIterations2p = 2
}

func profileBC6HSlow(s *BC6HEncSettings) {
	s.SlowMode = true
	s.FastMode = false
	s.FastSkipTreshold = 10
	s.RefineIterations1p = 2
	s.RefineIterations2p = 2
}

func profileBC6HVerySlow(s *BC6HEncSettings) {
	s.SlowMode = true
	s.FastMode = false
	s.FastSkipTreshold = 32
	s.RefineIterations1p = 2
	s.RefineIterations2p = 2
}

func profileETCSlow(s *ETCEncSettings) {
	s.FastSkipTreshold = 6
}

func profileASTCFast(s *ASTCEncSettings, blockWidth, blockHeight int32) {
	s.BlockWidth = blockWidth
	s.BlockHeight = blockHeight
	s.Channels = 3
	s.FastSkipTreshold = 5
	s.RefineIterations = 2
}

func profileASTCAlphaFast(s *ASTCEncSettings, blockWidth, blockHeight int32) {
	s.BlockWidth = blockWidth
	s.BlockHeight = blockHeight
	s.Channels = 4
	s.FastSkipTreshold = 5
	s.RefineIterations = 2
}

func profileASTCAlphaSlow(s *ASTCEncSettings, blockWidth, blockHeight int32) {
	s.BlockWidth = blockWidth
	s.BlockHeight = blockHeight
	s.Channels = 4
	s.FastSkipTreshold = 64
	s.RefineIterations = 2
}

// The registries are populated once and only read afterwards.
var (
	bc7Profiles = map[string]func(*BC7EncSettings){
		"ultrafast":       profileUltraFast,
		"veryfast":        profileVeryFast,
		"fast":            profileFast,
		"basic":           profileBasic,
		"slow":            profileSlow,
		"alpha_ultrafast": profileAlphaUltraFast,
		"alpha_veryfast":  profileAlphaVeryFast,
		"alpha_fast":      profileAlphaFast,
		"alpha_basic":     profileAlphaBasic,
		"alpha_slow":      profileAlphaSlow,
	}

	bc6hProfiles = map[string]func(*BC6HEncSettings){
		"veryfast": profileBC6HVeryFast,
		"fast":     profileBC6HFast,
		"basic":    profileBC6HBasic,
		"slow":     profileBC6HSlow,
		"veryslow": profileBC6HVerySlow,
	}

	etcProfiles = map[string]func(*ETCEncSettings){
		"slow": profileETCSlow,
	}

	astcProfiles = map[string]func(*ASTCEncSettings){
		"fast":       withBlockShape(profileASTCFast),
		"alpha_fast": withBlockShape(profileASTCAlphaFast),
		"alpha_slow": withBlockShape(profileASTCAlphaSlow),
	}
)

// withBlockShape threads the record's current footprint into an ASTC preset.
func withBlockShape(preset func(*ASTCEncSettings, int32, int32)) func(*ASTCEncSettings) {
	return func(s *ASTCEncSettings) { preset(s, s.BlockWidth, s.BlockHeight) }
}

// Profiles returns the sorted preset names for f, or nil when f takes no
// settings.
func Profiles(f Format) []string {
	switch f {
	case FormatBC6H:
		return bc6hFamily.profileNames()
	case FormatBC7:
		return bc7Family.profileNames()
	case FormatETC1:
		return etcFamily.profileNames()
	case FormatASTC:
		return astcFamily.profileNames()
	default:
		return nil
	}
}

func newBC7Profile(preset func(*BC7EncSettings)) *BC7EncSettings {
	s := &BC7EncSettings{}
	preset(s)
	return s
}

func GetProfileUltraFast() *BC7EncSettings      { return newBC7Profile(profileUltraFast) }
func GetProfileVeryFast() *BC7EncSettings       { return newBC7Profile(profileVeryFast) }
func GetProfileFast() *BC7EncSettings           { return newBC7Profile(profileFast) }
func GetProfileBasic() *BC7EncSettings          { return newBC7Profile(profileBasic) }
func GetProfileSlow() *BC7EncSettings           { return newBC7Profile(profileSlow) }
func GetProfileAlphaUltraFast() *BC7EncSettings { return newBC7Profile(profileAlphaUltraFast) }
func GetProfileAlphaVeryFast() *BC7EncSettings  { return newBC7Profile(profileAlphaVeryFast) }
func GetProfileAlphaFast() *BC7EncSettings      { return newBC7Profile(profileAlphaFast) }
func GetProfileAlphaBasic() *BC7EncSettings     { return newBC7Profile(profileAlphaBasic) }
func GetProfileAlphaSlow() *BC7EncSettings      { return newBC7Profile(profileAlphaSlow) }

func newBC6HProfile(preset func(*BC6HEncSettings)) *BC6HEncSettings {
	s := &BC6HEncSettings{}
	preset(s)
	return s
}

func GetProfileBC6HVeryFast() *BC6HEncSettings { return newBC6HProfile(profileBC6HVeryFast) }
func GetProfileBC6HFast() *BC6HEncSettings     { return newBC6HProfile(profileBC6HFast) }
func GetProfileBC6HBasic() *BC6HEncSettings    { return newBC6HProfile(profileBC6HBasic) }
func GetProfileBC6HSlow() *BC6HEncSettings     { return newBC6HProfile(profileBC6HSlow) }
func GetProfileBC6HVerySlow() *BC6HEncSettings { return newBC6HProfile(profileBC6HVerySlow) }

func GetProfileETCSlow() *ETCEncSettings {
	s := &ETCEncSettings{}
	profileETCSlow(s)
	return s
}

// GetProfileASTCFast returns the "fast" RGB preset for a blockWidth x
// blockHeight footprint.
func GetProfileASTCFast(blockWidth, blockHeight int) *ASTCEncSettings {
	s := &ASTCEncSettings{}
	profileASTCFast(s, int32(blockWidth), int32(blockHeight))
	return s
}

// GetProfileASTCAlphaFast returns the "alpha_fast" preset for a blockWidth x
// blockHeight footprint.
func GetProfileASTCAlphaFast(blockWidth, blockHeight int) *ASTCEncSettings {
	s := &ASTCEncSettings{}
	profileASTCAlphaFast(s, int32(blockWidth), int32(blockHeight))
	return s
}

// GetProfileASTCAlphaSlow returns the "alpha_slow" preset for a blockWidth x
// blockHeight footprint.
func GetProfileASTCAlphaSlow(blockWidth, blockHeight int) *ASTCEncSettings {
	s := &ASTCEncSettings{}
	profileASTCAlphaSlow(s, int32(blockWidth), int32(blockHeight))
	return s
}
