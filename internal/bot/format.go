package bot

import (
	"fmt"
	"strings"

	"github.com/leetmentor/bot/internal/domain"
)

const helpText = `🤖 LeetMentor Commands:

📊 Profile & Analysis:
/profile <username> - Get detailed profile analysis
/plan <username> - Get personalized study plan

🎯 Daily Recommendations:
/recommended2 <username> - Get personalized daily problems
/solved speed - Mark speed problem as solved
/solved knowledge - Mark knowledge problem as solved
/mystatus - Check your daily progress

🎲 Random Problems:
/random - Get any random problem
/easy - Get random easy problem
/medium - Get random medium problem
/hard - Get random hard problem

📅 Daily Features:
/daily - Today's daily challenge

💡 Tips:
• Daily problems adapt to your skill level
• Speed problems boost solving pace
• Knowledge problems improve understanding`

// greetingReplies maps plain-text messages to canned responses
var greetingReplies = map[string]string{
	"hello":  "👋 Hey there! Ready to solve some LeetCode problems?",
	"hi":     "👋 Hello! Use /recommended2 <username> for daily problems!",
	"bye":    "👋 Goodbye! Keep coding and good luck!",
	"help":   "Use /help to see all available commands!",
	"thanks": "😊 You're welcome! Happy coding!",
}

const fallbackHint = `🤔 Try:
• /recommended2 <username> - Get daily problems
• /help - See all commands
• Say 'hello' for a greeting!`

func welcomeText(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`🚀 Welcome %s!

I'm your AI-powered LeetCode companion!

✨ What I can do:
• Get personalized daily problems
• Analyze your LeetCode profile
• Create personalized study plans
• Daily challenges with AI hints

🎯 Quick Start:
• /recommended2 <username> - Get 2 daily problems
• /profile <username> - Analyze profile
• /daily - Today's challenge
• /help - See all commands`, name)
}

func formatNewPair(session *domain.DailySession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Daily Problems for %s\n\n", session.Username)
	fmt.Fprintf(&b, "⚡ SPEED PROBLEM (Boost your pace)\n")
	fmt.Fprintf(&b, "#%s - %s\n", session.Speed.FrontendID, session.Speed.Title)
	fmt.Fprintf(&b, "Difficulty: %s | Acceptance: %.1f%%\n", session.Speed.Difficulty, session.Speed.AcRate)
	fmt.Fprintf(&b, "🔗 %s\n\n", session.Speed.URL())
	fmt.Fprintf(&b, "🧠 KNOWLEDGE PROBLEM (Expand your skills)\n")
	fmt.Fprintf(&b, "#%s - %s\n", session.Knowledge.FrontendID, session.Knowledge.Title)
	fmt.Fprintf(&b, "Difficulty: %s | Acceptance: %.1f%%\n", session.Knowledge.Difficulty, session.Knowledge.AcRate)
	fmt.Fprintf(&b, "🔗 %s\n\n", session.Knowledge.URL())
	b.WriteString("💡 Use /solved speed or /solved knowledge when done!\n")
	b.WriteString("📊 Check progress with /mystatus")
	return b.String()
}

func formatSessionStatus(session *domain.DailySession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Your Today's Problems (%s)\n\n", session.Username)
	fmt.Fprintf(&b, "⚡ SPEED PROBLEM - %s\n", solvedLabel(session.Solved(domain.KindSpeed)))
	fmt.Fprintf(&b, "#%s - %s\n", session.Speed.FrontendID, session.Speed.Title)
	fmt.Fprintf(&b, "🔗 %s\n\n", session.Speed.URL())
	fmt.Fprintf(&b, "🧠 KNOWLEDGE PROBLEM - %s\n", solvedLabel(session.Solved(domain.KindKnowledge)))
	fmt.Fprintf(&b, "#%s - %s\n", session.Knowledge.FrontendID, session.Knowledge.Title)
	fmt.Fprintf(&b, "🔗 %s\n\n", session.Knowledge.URL())
	if session.Completed() {
		b.WriteString("🎉 Great job! All problems solved for today!")
	} else {
		b.WriteString("💡 Use /solved speed or /solved knowledge when done!")
	}
	return b.String()
}

func solvedLabel(solved bool) string {
	if solved {
		return "✅ SOLVED"
	}
	return "⏳ PENDING"
}

func formatProblem(header string, p *domain.Problem) string {
	return fmt.Sprintf(`%s #%s

📝 Title: %s
⚡ Difficulty: %s
📊 Acceptance Rate: %.1f%%
🏷️ Topics: %s

🔗 %s

💪 Good luck solving this one!`,
		header, p.FrontendID,
		p.Title,
		p.Difficulty,
		p.AcRate,
		strings.Join(p.TopicNames(5), ", "),
		p.URL(),
	)
}

func formatDailyChallenge(challenge *domain.DailyChallenge) string {
	q := challenge.Question
	return fmt.Sprintf(`📅 Today's Daily Challenge

🎯 Problem: %s
⚡ Difficulty: %s
📊 Acceptance Rate: %.1f%%
🏷️ Topics: %s

💡 Daily challenges give you extra points!
🔗 Solve at: %s`,
		q.Title,
		q.Difficulty,
		q.AcRate,
		strings.Join(q.TopicNames(5), ", "),
		q.URL(),
	)
}

func formatProfile(username string, stats domain.UserStats) string {
	return fmt.Sprintf(`📊 Profile Analysis: %s

🏆 Statistics:
• Total Solved: %d
• Easy: %d | Medium: %d | Hard: %d
• Global Ranking: %s
• Skill Level: %s

📈 Quick Insights:
• %s

💡 Use /recommended2 %s for daily problems!`,
		username,
		stats.TotalSolved,
		stats.EasySolved, stats.MediumSolved, stats.HardSolved,
		stats.RankingDisplay(),
		stats.Level(),
		stats.Insight(),
		username,
	)
}

func formatStudyPlan(username, plan string) string {
	return fmt.Sprintf(`📚 Personalized Study Plan for %s

%s

🎯 Remember: Consistency beats intensity!
📈 Use /recommended2 %s for daily practice`, username, plan, username)
}

// stripMarkup removes formatting characters for the plain-text resend
// fallback
func stripMarkup(text string) string {
	replacer := strings.NewReplacer("*", "", "_", "", "`", "")
	return replacer.Replace(text)
}
