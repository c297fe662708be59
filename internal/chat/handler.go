package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/recipebot/internal/availability"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/matching"
	"github.com/alexanderramin/recipebot/internal/service"
)

const (
	clearEveningMinutes = 240
	proteinFocusPct     = 50
	proteinBoostPct     = 40
	recentMealsShown    = 5
	picksShown          = 3
)

var medals = []string{"🥇", "🥈", "🥉"}

type Handler struct {
	Recommend    service.RecommendService
	Meals        service.MealService
	Nutrition    service.NutritionService
	Pantry       service.PantryService
	Catalog      service.CatalogService
	Availability availability.Provider
}

// Respond records text and the reply in s and returns the reply.
func (h *Handler) Respond(ctx context.Context, s *Session, text string) (string, error) {
	text = strings.TrimSpace(text)
	s.add(RoleUser, text)

	var (
		reply string
		err   error
	)
	switch DetectIntent(text) {
	case IntentNutrition:
		reply, err = h.nutrition(ctx)
	case IntentPantry:
		reply, err = h.pantry(ctx)
	case IntentLog:
		reply, err = h.logMeal(ctx, s, text)
	case IntentAnother:
		reply, err = h.recommend(ctx, s, text, 1)
	default:
		reply, err = h.recommend(ctx, s, text, 0)
	}
	if err != nil {
		return "", err
	}
	s.add(RoleBot, reply)
	return reply, nil
}

func (h *Handler) availability(ctx context.Context, s *Session) (availability.Availability, error) {
	if s.Availability != nil {
		return *s.Availability, nil
	}
	a, err := h.Availability.FreeMinutesTonight(ctx)
	if err != nil {
		return availability.Availability{}, err
	}
	s.Availability = &a
	return a, nil
}

func (h *Handler) recommend(ctx context.Context, s *Session, text string, skip int) (string, error) {
	avail, err := h.availability(ctx, s)
	if err != nil {
		return "", err
	}
	emphasis, capMin := DetectEmphasis(text)

	req := contract.NewDinnerRequest(avail.Minutes)
	req.CalendarSummary = avail.Summary
	req.Emphasis = emphasis
	req.CapMin = capMin
	req.Skip = skip
	resp, err := h.Recommend.Recommend(ctx, req)
	if err != nil {
		return "", err
	}

	maxTime := req.EffectiveMinutes()
	if len(resp.Recommendations) == 0 {
		return fmt.Sprintf("Nothing fits a %d-minute window right now. Try asking for more time?", maxTime), nil
	}
	s.LastRecs = resp.Recommendations

	var b strings.Builder
	if maxTime < clearEveningMinutes {
		fmt.Fprintf(&b, "You have %d minutes free tonight.", maxTime)
	} else {
		b.WriteString("Evening looks clear.")
	}
	if p := resp.Weekly.Progress.Pct(domain.MacroProtein); p < proteinFocusPct {
		fmt.Fprintf(&b, " Protein is at %d%% for the week, so I'm prioritizing that.", p)
	}
	b.WriteString("\n\nHere's what I'd suggest:\n")

	for i, rec := range resp.Recommendations {
		if i >= picksShown {
			break
		}
		r := rec.Recipe
		fmt.Fprintf(&b, "\n%s %s\n", medals[i], r.Name)
		fmt.Fprintf(&b, "   %s · %s · %d min · ⭐ %d/5 · Match: %d%%\n", r.Cuisine, r.Difficulty, r.TotalMinutes, r.FamilyRating, rec.Score)
		for _, reason := range rec.Reasons {
			fmt.Fprintf(&b, "   - %s\n", reason.Message)
		}
		fmt.Fprintf(&b, "   P:%dg · Fiber:%dg · %dcal\n", r.ProteinG, r.FiberG, r.Calories)
	}
	b.WriteString("\nSay \"I'll cook [name]\" to log it, or \"suggest another\" for more options.")
	return b.String(), nil
}

func (h *Handler) logMeal(ctx context.Context, s *Session, text string) (string, error) {
	recipes, err := h.Catalog.List(ctx, "")
	if err != nil {
		return "", err
	}
	recipe, ok := matching.FindMentioned(text, recipes)
	if !ok {
		top, hasTop := s.LastTopPick()
		if !hasTop {
			return `Which recipe? Say "I cooked Palak Paneer" or "log Dal Tadka".`, nil
		}
		recipe = top.Recipe
	}

	resp, err := h.Meals.LogRecipe(ctx, recipe, "")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Logged: %s\n\nAdded %dg protein, %dg fiber, %d cal.\nProtein is now at %d%% for the week. Enjoy!",
		recipe.Name, recipe.ProteinG, recipe.FiberG, recipe.Calories,
		resp.Weekly.Progress.Pct(domain.MacroProtein),
	), nil
}

func (h *Handler) nutrition(ctx context.Context) (string, error) {
	w, err := h.Nutrition.Weekly(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's your week so far (%d meals logged):\n\n", len(w.Meals))
	fmt.Fprintf(&b, "Protein: %dg / %dg (%d%%)\n", w.Totals.ProteinG, w.Goals.ProteinG, w.Progress.Pct(domain.MacroProtein))
	fmt.Fprintf(&b, "Fiber: %dg / %dg (%d%%)\n", w.Totals.FiberG, w.Goals.FiberG, w.Progress.Pct(domain.MacroFiber))
	fmt.Fprintf(&b, "Calories: %d / %d (%d%%)\n", w.Totals.Calories, w.Goals.Calories, w.Progress.Pct(domain.MacroCalories))

	b.WriteString("\nRecent meals:")
	recent := w.Meals
	if len(recent) > recentMealsShown {
		recent = recent[len(recent)-recentMealsShown:]
	}
	for _, m := range recent {
		fmt.Fprintf(&b, "\n• %s — %s (P:%dg, Fiber:%dg)", m.CookedOn.Format(domain.DateLayout), m.RecipeName, m.ProteinG, m.FiberG)
	}
	if len(recent) == 0 {
		b.WriteString(" none yet")
	}

	b.WriteString("\n\n")
	if w.Progress.Pct(domain.MacroProtein) < proteinBoostPct {
		tip, err := h.proteinTip(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(tip)
	} else {
		b.WriteString("Looking good!")
	}
	return b.String(), nil
}

// proteinTip names the three highest-protein recipes in the catalog.
func (h *Handler) proteinTip(ctx context.Context) (string, error) {
	recipes, err := h.Catalog.List(ctx, "")
	if err != nil {
		return "", err
	}
	sorted := append([]domain.Recipe(nil), recipes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ProteinG > sorted[j].ProteinG })
	names := make([]string, 0, picksShown)
	for i := 0; i < len(sorted) && i < picksShown; i++ {
		names = append(names, sorted[i].Name)
	}
	if len(names) == 0 {
		return "Protein needs a boost.", nil
	}
	return fmt.Sprintf("Protein needs a boost. Try %s tonight.", joinOr(names)), nil
}

func joinOr(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}

func (h *Handler) pantry(ctx context.Context) (string, error) {
	p, err := h.Pantry.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	in, out := p.InStock(), p.OutOfStock()
	return fmt.Sprintf("In stock (%d items):\n%s\n\nNeed to buy (%d):\n%s",
		len(in), strings.Join(in, ", "),
		len(out), strings.Join(out, ", "),
	), nil
}
