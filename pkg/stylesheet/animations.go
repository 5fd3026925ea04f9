package stylesheet

import (
	"fmt"
	"strings"

	"github.com/shishobooks/bottomnav/pkg/models"
)

type frame struct {
	stops string
	decl  string
}

type animation struct {
	// onItem animates the whole item instead of just its icon.
	onItem bool
	origin string
	// clickFactor multiplies the configured duration for the click keyframes.
	clickFactor int
	hover       func(rgb string) []frame
	click       func(rgb string) []frame
}

func translateY(px int) string { return fmt.Sprintf("transform: translateY(%dpx);", px) }
func translateX(px int) string { return fmt.Sprintf("transform: translateX(%dpx);", px) }
func rotate(deg int) string    { return fmt.Sprintf("transform: rotate(%ddeg);", deg) }
func scale(f string) string    { return fmt.Sprintf("transform: scale(%s);", f) }

func bounce(high, low int) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 20%, 50%, 80%, 100%", translateY(0)},
			{"40%", translateY(high)},
			{"60%", translateY(low)},
		}
	}
}

func zoom(peak string) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 100%", scale("1")},
			{"50%", scale(peak)},
		}
	}
}

func pulse(peak, opacity string) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 100%", scale("1") + " opacity: 1;"},
			{"50%", scale(peak) + " opacity: " + opacity + ";"},
		}
	}
}

func fade(opacity string) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 100%", "opacity: 1;"},
			{"50%", "opacity: " + opacity + ";"},
		}
	}
}

func slide(px int) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 100%", translateY(0)},
			{"50%", translateY(px)},
		}
	}
}

func spin(deg int) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%", rotate(0)},
			{"100%", rotate(deg)},
		}
	}
}

func shake(px int) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 100%", translateX(0)},
			{"20%, 60%", translateX(-px)},
			{"40%, 80%", translateX(px)},
		}
	}
}

func heartbeat(peak string) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"0%, 28%, 70%, 100%", scale("1")},
			{"14%, 42%", scale(peak)},
		}
	}
}

func swing(a, b, c, d int) func(string) []frame {
	return func(string) []frame {
		return []frame{
			{"20%", rotate(a)},
			{"40%", rotate(b)},
			{"60%", rotate(c)},
			{"80%", rotate(d)},
			{"100%", rotate(0)},
		}
	}
}

func ripple(alpha string, radius int) func(string) []frame {
	return func(rgb string) []frame {
		return []frame{
			{"0%", fmt.Sprintf("box-shadow: 0 0 0 0 rgba(%s, %s);", rgb, alpha)},
			{"100%", fmt.Sprintf("box-shadow: 0 0 0 %dpx rgba(%s, 0);", radius, rgb)},
		}
	}
}

var animations = map[string]animation{
	models.AnimationBounce:    {clickFactor: 1, hover: bounce(-8, -4), click: bounce(-12, -6)},
	models.AnimationZoom:      {clickFactor: 1, hover: zoom("1.2"), click: zoom("1.35")},
	models.AnimationPulse:     {clickFactor: 1, hover: pulse("1.1", "0.7"), click: pulse("1.2", "0.5")},
	models.AnimationFade:      {clickFactor: 1, hover: fade("0.5"), click: fade("0.2")},
	models.AnimationSlide:     {clickFactor: 1, hover: slide(-6), click: slide(-10)},
	models.AnimationRotate:    {clickFactor: 1, hover: spin(360), click: spin(720)},
	models.AnimationShake:     {clickFactor: 1, hover: shake(3), click: shake(6)},
	models.AnimationHeartbeat: {clickFactor: 2, hover: heartbeat("1.15"), click: heartbeat("1.3")},
	models.AnimationSwing:     {clickFactor: 1, origin: "top center", hover: swing(15, -10, 5, -5), click: swing(25, -20, 10, -10)},
	models.AnimationRipple:    {clickFactor: 1, onItem: true, hover: ripple("0.4", 10), click: ripple("0.6", 20)},
}

// keyframeName is the @keyframes identifier for an animation phase.
func keyframeName(kind, phase string) string {
	return "bottom-nav-" + kind + "-" + phase
}

func writeAnimation(b *strings.Builder, doc *models.NavigationSettings) {
	kind := doc.Animations.Type
	anim, ok := animations[kind]
	if !ok {
		return
	}
	duration := doc.Animations.Duration
	rgb := RGBTriple(doc.Style.ActiveColor)

	item := "." + models.ClassItem
	target := item + " ." + models.ClassIcon
	hoverTarget := item + ":hover ." + models.ClassIcon
	clickTarget := item + ":active ." + models.ClassIcon
	if anim.onItem {
		target, hoverTarget, clickTarget = item, item+":hover", item+":active"
	}

	fmt.Fprintf(b, "\n/* Animation: %s */\n", kind)
	fmt.Fprintf(b, "%s,\n%s {\n\ttransition-duration: %dms !important;\n", item, target, duration)
	if anim.origin != "" {
		fmt.Fprintf(b, "\ttransform-origin: %s;\n", anim.origin)
	}
	b.WriteString("}\n")

	fmt.Fprintf(b, "%s {\n\tanimation: %s %dms ease-in-out;\n}\n", hoverTarget, keyframeName(kind, "hover"), duration)
	fmt.Fprintf(b, "%s {\n\tanimation: %s %dms ease-in-out;\n}\n", clickTarget, keyframeName(kind, "click"), duration*anim.clickFactor)

	writeKeyframes(b, keyframeName(kind, "hover"), anim.hover(rgb))
	writeKeyframes(b, keyframeName(kind, "click"), anim.click(rgb))
}

func writeKeyframes(b *strings.Builder, name string, frames []frame) {
	fmt.Fprintf(b, "@keyframes %s {\n", name)
	for _, f := range frames {
		fmt.Fprintf(b, "\t%s { %s }\n", f.stops, f.decl)
	}
	b.WriteString("}\n")
}
