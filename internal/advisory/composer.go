// Package advisory turns a classified risk result into a localized,
// factor-specific guidance sentence.
//
// Each risk level has an ordered list of (predicate, template) rules; the
// first matching rule wins. The order is load-bearing: when rain, humidity
// and heat conditions are simultaneously true, the rain wording is the one
// the farmer sees.
package advisory

import (
	"fmt"

	"harvest-guard/internal/model"
)

// Context carries everything a template may interpolate.
type Context struct {
	CropName    string
	StorageName string
	ETCLHours   int
	AvgHumidity float64
	AvgRain     float64
	AvgTemp     float64
}

// Advisory is the composed output: the severity marker plus the sentence.
// The icon-to-branch mapping is part of the contract exposed to the UI
// (urgent vs informational styling); callers must not re-derive it.
type Advisory struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type rule struct {
	match func(Context) bool
	bn    func(Context) string
	en    func(Context) string
}

func always(Context) bool { return true }

// Composer resolves localized names and selects templates. Zero value is not
// usable; construct with New.
type Composer struct {
	cropNames    map[string]string
	storageNames map[string]string
	rules        map[model.RiskLevel][]rule
}

// New builds a composer over the default name tables.
func New() *Composer {
	return NewWithNames(nil, nil)
}

// NewWithNames overlays the given crop/storage name tables onto the
// defaults. Nil maps are fine.
func NewWithNames(cropNames, storageNames map[string]string) *Composer {
	crops := DefaultCropNames()
	for code, name := range cropNames {
		crops[code] = name
	}
	storages := DefaultStorageNames()
	for code, name := range storageNames {
		storages[code] = name
	}
	return &Composer{
		cropNames:    crops,
		storageNames: storages,
		rules:        buildRules(),
	}
}

// CropName returns the localized crop name, or the raw code when unknown.
func (c *Composer) CropName(code string) string { return lookup(c.cropNames, code) }

// StorageName returns the localized storage-type name, or the raw code.
func (c *Composer) StorageName(code string) string { return lookup(c.storageNames, code) }

// CropNames returns a copy of the crop name table.
func (c *Composer) CropNames() map[string]string { return copyTable(c.cropNames) }

// StorageNames returns a copy of the storage-type name table.
func (c *Composer) StorageNames() map[string]string { return copyTable(c.storageNames) }

func copyTable(table map[string]string) map[string]string {
	out := make(map[string]string, len(table))
	for code, name := range table {
		out[code] = name
	}
	return out
}

// Compose selects the first matching template for the risk level and renders
// it in the requested language. Unrecognized languages render Bangla, the
// dashboard's default.
func (c *Composer) Compose(lang Lang, level model.RiskLevel, ctx Context) Advisory {
	rules, ok := c.rules[level]
	if !ok {
		rules = c.rules[model.RiskLow]
	}
	for _, r := range rules {
		if !r.match(ctx) {
			continue
		}
		text := r.bn(ctx)
		if lang == LangEnglish {
			text = r.en(ctx)
		}
		return Advisory{Icon: level.Icon(), Text: text}
	}
	// Unreachable: every level's last rule matches unconditionally.
	return Advisory{Icon: level.Icon()}
}

func buildRules() map[model.RiskLevel][]rule {
	return map[model.RiskLevel][]rule{
		model.RiskCritical: {
			{
				match: func(ctx Context) bool { return ctx.AvgRain > 70 },
				bn: func(ctx Context) string {
					return fmt.Sprintf("জরুরি! আগামী কয়েক দিনে বৃষ্টির সম্ভাবনা %.0f%%। আপনার %s (%s) এখনই শুকনো ও ঢাকা জায়গায় সরিয়ে নিন।",
						ctx.AvgRain, ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Urgent! Rain probability is %.0f%% over the next days. Move your %s (%s) to dry, covered storage immediately.",
						ctx.AvgRain, ctx.CropName, ctx.StorageName)
				},
			},
			{
				match: func(ctx Context) bool { return ctx.AvgHumidity > 80 },
				bn: func(ctx Context) string {
					return fmt.Sprintf("জরুরি! বাতাসের আর্দ্রতা %.0f%%। %s (%s) রক্ষায় এখনই বায়ু চলাচল বাড়ান ও ফ্যান চালান।",
						ctx.AvgHumidity, ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Urgent! Humidity is at %.0f%%. Increase ventilation and run fans now to protect your %s (%s).",
						ctx.AvgHumidity, ctx.CropName, ctx.StorageName)
				},
			},
			{
				match: func(ctx Context) bool { return ctx.AvgTemp > 35 },
				bn: func(ctx Context) string {
					return fmt.Sprintf("জরুরি! তাপমাত্রা %.0f°সে. পর্যন্ত উঠছে। %s (%s) ছায়ায় রাখুন ও ঠান্ডা করার ব্যবস্থা করুন।",
						ctx.AvgTemp, ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Urgent! Temperatures are reaching %.0f°C. Shade and cool your %s (%s).",
						ctx.AvgTemp, ctx.CropName, ctx.StorageName)
				},
			},
			{
				match: always,
				bn: func(ctx Context) string {
					return fmt.Sprintf("জরুরি! আপনার %s (%s) আনুমানিক %d ঘণ্টার মধ্যে নষ্ট হতে পারে। এখনই ব্যবস্থা নিন।",
						ctx.CropName, ctx.StorageName, ctx.ETCLHours)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Urgent! Your %s (%s) may spoil within an estimated %d hours. Act now.",
						ctx.CropName, ctx.StorageName, ctx.ETCLHours)
				},
			},
		},
		model.RiskHigh: {
			{
				match: func(ctx Context) bool { return ctx.AvgRain > 60 },
				bn: func(ctx Context) string {
					return fmt.Sprintf("সতর্কতা: বৃষ্টির সম্ভাবনা %.0f%%। %s (%s) ত্রিপল বা পলিথিন দিয়ে ঢেকে রাখুন।",
						ctx.AvgRain, ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Warning: rain probability is %.0f%%. Keep your %s (%s) covered with tarpaulin or polythene.",
						ctx.AvgRain, ctx.CropName, ctx.StorageName)
				},
			},
			{
				match: func(ctx Context) bool { return ctx.AvgHumidity > 75 },
				bn: func(ctx Context) string {
					return fmt.Sprintf("সতর্কতা: আর্দ্রতা %.0f%%। %s (%s) এর গুদামে বায়ু চলাচলের ব্যবস্থা করুন।",
						ctx.AvgHumidity, ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Warning: humidity is at %.0f%%. Ventilate the store holding your %s (%s).",
						ctx.AvgHumidity, ctx.CropName, ctx.StorageName)
				},
			},
			{
				match: always,
				bn: func(ctx Context) string {
					return fmt.Sprintf("সতর্কতা: আপনার %s (%s) আনুমানিক %d ঘণ্টার মধ্যে ঝুঁকিতে পড়তে পারে। গুদামের অবস্থা পরীক্ষা করুন।",
						ctx.CropName, ctx.StorageName, ctx.ETCLHours)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Warning: your %s (%s) is at risk within an estimated %d hours. Check storage conditions.",
						ctx.CropName, ctx.StorageName, ctx.ETCLHours)
				},
			},
		},
		model.RiskModerate: {
			{
				match: always,
				bn: func(ctx Context) string {
					return fmt.Sprintf("সাবধান: আর্দ্রতা %.0f%% এবং বৃষ্টির সম্ভাবনা %.0f%%। %s (%s) নিয়মিত পর্যবেক্ষণ করুন।",
						ctx.AvgHumidity, ctx.AvgRain, ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Caution: humidity is %.0f%% and rain probability %.0f%%. Monitor your %s (%s) regularly.",
						ctx.AvgHumidity, ctx.AvgRain, ctx.CropName, ctx.StorageName)
				},
			},
		},
		model.RiskLow: {
			{
				match: always,
				bn: func(ctx Context) string {
					return fmt.Sprintf("আপনার %s (%s) ভালো অবস্থায় আছে। স্বাভাবিক নিয়মে সংরক্ষণ চালিয়ে যান।",
						ctx.CropName, ctx.StorageName)
				},
				en: func(ctx Context) string {
					return fmt.Sprintf("Your %s (%s) is in good condition. Continue standard storage procedures.",
						ctx.CropName, ctx.StorageName)
				},
			},
		},
	}
}
