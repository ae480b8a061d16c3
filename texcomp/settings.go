package texcomp

import (
	"fmt"
	"strings"
)

// BC7EncSettings mirrors ispc_texcomp's bc7_enc_settings.
//
// ModeSelection enables the mode groups {0,2}, {1,3,7}, {4,5} and {6};
// RefineIterations is indexed by BC7 mode.
type BC7EncSettings struct {
	ModeSelection           [4]bool
	RefineIterations        [8]int32
	SkipMode2               bool
	FastSkipTresholdMode1   int32
	FastSkipTresholdMode3   int32
	FastSkipTresholdMode7   int32
	Mode45Channel0          int32
	RefineIterationsChannel int32
	Channels                int32
}

// BC6HEncSettings mirrors ispc_texcomp's bc6h_enc_settings.
type BC6HEncSettings struct {
	SlowMode           bool
	FastMode           bool
	RefineIterations1p int32
	RefineIterations2p int32
	FastSkipTreshold   int32
}

// ETCEncSettings mirrors ispc_texcomp's etc_enc_settings.
type ETCEncSettings struct {
	FastSkipTreshold int32
}

// ASTCEncSettings mirrors ispc_texcomp's astc_enc_settings.
type ASTCEncSettings struct {
	BlockWidth       int32
	BlockHeight      int32
	Channels         int32
	FastSkipTreshold int32
	RefineIterations int32
}

var bc7Family = &family[BC7EncSettings]{
	name: "BC7EncSettings",
	fields: map[string]fieldSetter[BC7EncSettings]{
		"mode_selection":           boolArrayField("mode_selection", func(s *BC7EncSettings) []bool { return s.ModeSelection[:] }),
		"refineIterations":         int32ArrayField("refineIterations", func(s *BC7EncSettings) []int32 { return s.RefineIterations[:] }),
		"skip_mode2":               boolField("skip_mode2", func(s *BC7EncSettings) *bool { return &s.SkipMode2 }),
		"fastSkipTreshold_mode1":   int32Field("fastSkipTreshold_mode1", func(s *BC7EncSettings) *int32 { return &s.FastSkipTresholdMode1 }),
		"fastSkipTreshold_mode3":   int32Field("fastSkipTreshold_mode3", func(s *BC7EncSettings) *int32 { return &s.FastSkipTresholdMode3 }),
		"fastSkipTreshold_mode7":   int32Field("fastSkipTreshold_mode7", func(s *BC7EncSettings) *int32 { return &s.FastSkipTresholdMode7 }),
		"mode45_channel0":          flagInt32Field("mode45_channel0", func(s *BC7EncSettings) *int32 { return &s.Mode45Channel0 }),
		"refineIterations_channel": int32Field("refineIterations_channel", func(s *BC7EncSettings) *int32 { return &s.RefineIterationsChannel }),
		"channels":                 int32Field("channels", func(s *BC7EncSettings) *int32 { return &s.Channels }),
	},
	profiles: bc7Profiles,
}

var bc6hFamily = &family[BC6HEncSettings]{
	name: "BC6HEncSettings",
	fields: map[string]fieldSetter[BC6HEncSettings]{
		"slow_mode":           boolField("slow_mode", func(s *BC6HEncSettings) *bool { return &s.SlowMode }),
		"fast_mode":           boolField("fast_mode", func(s *BC6HEncSettings) *bool { return &s.FastMode }),
		"refineIterations_1p": int32Field("refineIterations_1p", func(s *BC6HEncSettings) *int32 { return &s.RefineIterations1p }),
		"refineIterations_2p": int32Field("refineIterations_2p", func(s *BC6HEncSettings) *int32 { return &s.RefineIterations2p }),
		"fastSkipTreshold":    int32Field("fastSkipTreshold", func(s *BC6HEncSettings) *int32 { return &s.FastSkipTreshold }),
	},
	profiles: bc6hProfiles,
}

var etcFamily = &family[ETCEncSettings]{
	name: "ETCEncSettings",
	fields: map[string]fieldSetter[ETCEncSettings]{
		"fastSkipTreshold": int32Field("fastSkipTreshold", func(s *ETCEncSettings) *int32 { return &s.FastSkipTreshold }),
	},
	profiles: etcProfiles,
}

var astcFamily = &family[ASTCEncSettings]{
	name: "ASTCEncSettings",
	fields: map[string]fieldSetter[ASTCEncSettings]{
		"block_width":      int32Field("block_width", func(s *ASTCEncSettings) *int32 { return &s.BlockWidth }),
		"block_height":     int32Field("block_height", func(s *ASTCEncSettings) *int32 { return &s.BlockHeight }),
		"channels":         int32Field("channels", func(s *ASTCEncSettings) *int32 { return &s.Channels }),
		"fastSkipTreshold": int32Field("fastSkipTreshold", func(s *ASTCEncSettings) *int32 { return &s.FastSkipTreshold }),
		"refineIterations": int32Field("refineIterations", func(s *ASTCEncSettings) *int32 { return &s.RefineIterations }),
	},
	profiles: astcProfiles,
}

// NewBC7EncSettings builds BC7 settings. A non-empty profile is applied
// first; fields then override individual values.
func NewBC7EncSettings(fields Fields, profile string) (*BC7EncSettings, error) {
	s, err := bc7Family.build(fields, profile)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// NewBC6HEncSettings builds BC6H settings. A non-empty profile is applied
// first; fields then override individual values.
func NewBC6HEncSettings(fields Fields, profile string) (*BC6HEncSettings, error) {
	s, err := bc6hFamily.build(fields, profile)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// NewETCEncSettings builds ETC1 settings. A non-empty profile is applied
// first; fields then override individual values.
func NewETCEncSettings(fields Fields, profile string) (*ETCEncSettings, error) {
	s, err := etcFamily.build(fields, profile)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// NewASTCEncSettings builds ASTC settings. A non-empty profile is applied
// first, parameterised by the requested block_width/block_height; fields then
// override individual values.
func NewASTCEncSettings(fields Fields, profile string) (*ASTCEncSettings, error) {
	s, err := astcFamily.build(fields, profile)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// NewSettings builds the settings record for f: *BC6HEncSettings,
// *BC7EncSettings, *ETCEncSettings or *ASTCEncSettings. Formats without
// settings return nil and reject a profile or fields.
func NewSettings(f Format, fields Fields, profile string) (any, error) {
	switch f {
	case FormatBC6H:
		return NewBC6HEncSettings(fields, profile)
	case FormatBC7:
		return NewBC7EncSettings(fields, profile)
	case FormatETC1:
		return NewETCEncSettings(fields, profile)
	case FormatASTC:
		return NewASTCEncSettings(fields, profile)
	case FormatBC1, FormatBC3, FormatBC4, FormatBC5:
		if profile != "" || len(fields) > 0 {
			return nil, invalidArgument("%s takes no settings", f)
		}
		return nil, nil
	default:
		return nil, invalidArgument("unknown format %v", f)
	}
}

// SettingsFields returns the field names accepted by NewSettings for f.
func SettingsFields(f Format) []string {
	switch f {
	case FormatBC6H:
		return bc6hFamily.fieldNames()
	case FormatBC7:
		return bc7Family.fieldNames()
	case FormatETC1:
		return etcFamily.fieldNames()
	case FormatASTC:
		return astcFamily.fieldNames()
	default:
		return nil
	}
}

// ApplyProfile overwrites the fields governed by the named preset.
func (s *BC7EncSettings) ApplyProfile(name string) error { return bc7Family.applyProfile(s, name) }

// ApplyProfile overwrites the fields governed by the named preset.
func (s *BC6HEncSettings) ApplyProfile(name string) error { return bc6hFamily.applyProfile(s, name) }

// ApplyProfile overwrites the fields governed by the named preset.
func (s *ETCEncSettings) ApplyProfile(name string) error { return etcFamily.applyProfile(s, name) }

// ApplyProfile overwrites the fields governed by the named preset, keeping
// the current block footprint.
func (s *ASTCEncSettings) ApplyProfile(name string) error { return astcFamily.applyProfile(s, name) }

func (s BC7EncSettings) String() string {
	modes := make([]string, len(s.ModeSelection))
	for i, m := range s.ModeSelection {
		modes[i] = pyBool(m)
	}
	iters := make([]string, len(s.RefineIterations))
	for i, n := range s.RefineIterations {
		iters[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("BC7EncSettings(mode_selection=[%s], refineIterations=[%s], skip_mode2=%s, fastSkipTreshold_mode1=%d, fastSkipTreshold_mode3=%d, fastSkipTreshold_mode7=%d, mode45_channel0=%s, refineIterations_channel=%d, channels=%d)",
		strings.Join(modes, ", "),
		strings.Join(iters, ", "),
		pyBool(s.SkipMode2),
		s.FastSkipTresholdMode1,
		s.FastSkipTresholdMode3,
		s.FastSkipTresholdMode7,
		pyBool(s.Mode45Channel0 != 0),
		s.RefineIterationsChannel,
		s.Channels)
}

func (s BC6HEncSettings) String() string {
	return fmt.Sprintf("BC6HEncSettings(slow_mode=%s, fast_mode=%s, refineIterations_1p=%d, refineIterations_2p=%d, fastSkipTreshold=%d)",
		pyBool(s.SlowMode), pyBool(s.FastMode), s.RefineIterations1p, s.RefineIterations2p, s.FastSkipTreshold)
}

func (s ETCEncSettings) String() string {
	return fmt.Sprintf("ETCEncSettings(fastSkipTreshold=%d)", s.FastSkipTreshold)
}

func (s ASTCEncSettings) String() string {
	return fmt.Sprintf("ASTCEncSettings(block_width=%d, block_height=%d, channels=%d, fastSkipTreshold=%d, refineIterations=%d)",
		s.BlockWidth, s.BlockHeight, s.Channels, s.FastSkipTreshold, s.RefineIterations)
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
