package planner

import (
	"fmt"
	"strconv"
)

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p *Planner) statsLine() string {
	s := p.state.Stats
	streak := "no streak yet"
	if s.CurrentStreak > 0 {
		streak = fmt.Sprintf("%d-day streak", s.CurrentStreak)
	}
	return fmt.Sprintf("**Level %d** · %d pts · %s", s.Level(), s.TotalPoints, streak)
}

// Greeting is the hello/help reply listing what the bot understands.
func Greeting() string {
	return "Hi! I'm your **Study Planner Bot**. I can help you:\n" +
		"• **Add subjects** — e.g. *Add Math 5 hours* or *Add Physics*\n" +
		"• **Add tasks** — *task Math finish chapter 3 due 2025-04-01*\n" +
		"• **Finish or skip tasks** — *done a1b2c3* / *skip a1b2c3*\n" +
		"• **Track exams** — *exam Midterm Math 2025-06-01 chapters 1-5*\n" +
		"• **Plan revision** — *revision plan <exam-id>*\n" +
		"• **See your plan** — *list subjects*, *list tasks*, *list exams*\n" +
		"• **Get schedules** — *schedule* for today, *weekly* for the week\n" +
		"• **Check progress** — *stats* for points, level and streak\n" +
		"• **Start over** — *clear*\n\n" +
		"What would you like to do?"
}

// UnrecognizedReply nudges toward the valid command forms.
func UnrecognizedReply() string {
	return "I didn't quite get that. You can **add** a subject (e.g. *Add Math 5 hours*), " +
		"add a **task** (*task Math read chapter 2*), mark one **done**/**skip** by id, " +
		"track an **exam**, ask for a **revision plan**, **list** subjects/tasks/exams, " +
		"ask for a **schedule** or **weekly** plan, check your **stats**, or say **clear** to start over."
}
