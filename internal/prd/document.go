package prd

import (
	"fmt"
	"strings"
)

// notMentioned is the placeholder used for every blank field so the rendered
// document keeps its table shapes even with sparse input.
const notMentioned = "暂未提及"

// GenerateDocument renders the PRD payload as the standard five-chapter
// markdown document. Rendering is pure string substitution: identical input
// yields identical output.
func GenerateDocument(data *Data) string {
	var sb strings.Builder

	sb.WriteString("## 1. 需求介绍\n\n")
	fmt.Fprintf(&sb, "**产品背景和需求概述：** %s\n\n", orNotMentioned(data.Answer("c1_requirement_intro")))
	fmt.Fprintf(&sb, "**所属业务线：** %s\n\n", orNotMentioned(data.Answer("c1_business_line")))

	sb.WriteString("**团队成员配置：**\n\n")
	sb.WriteString("<div class=\"simple-table\">\n\n")
	sb.WriteString("| 产品经理 | 前端开发 | 后端开发 | 数据分析 |\n")
	sb.WriteString("|----------|----------|----------|----------|\n")
	fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n\n",
		orNotMentioned(data.Answer("c1_product_manager")),
		orNotMentioned(data.Answer("c1_frontend_dev")),
		orNotMentioned(data.Answer("c1_backend_dev")),
		orNotMentioned(data.Answer("c1_data_analyst")))
	sb.WriteString("</div>\n\n")

	sb.WriteString("**变更记录：**\n\n")
	sb.WriteString("<div class=\"simple-table\">\n\n")
	sb.WriteString("| 版本 | 修订人 | 修订日期 | 修订原因 |\n")
	sb.WriteString("|------|--------|----------|----------|\n")
	sb.WriteString(changeRecordsTable(data.ChangeRecords))
	sb.WriteString("\n\n</div>\n\n")

	sb.WriteString("## 2. 需求分析\n\n")
	sb.WriteString("**用户场景分析：**\n\n")
	sb.WriteString("<div style=\"overflow-x: auto;\" data-table=\"user-scenarios\">\n\n")
	sb.WriteString("| 用户类型 | 使用场景 | 痛点分析 |\n")
	sb.WriteString("|----------|----------|----------|\n")
	sb.WriteString(userScenariosTable(data.UserScenarios))
	sb.WriteString("\n\n</div>\n\n")
	fmt.Fprintf(&sb, "**需求目标：** %s\n\n", orNotMentioned(data.Answer("c2_requirement_goal")))

	sb.WriteString("## 3. 竞品分析\n\n")
	sb.WriteString("<div style=\"overflow-x: auto;\" data-table=\"competitors\">\n\n")
	sb.WriteString("| 产品名称 | 功能特点 | 主要优势 | 不足之处 | 市场地位 |\n")
	sb.WriteString("|----------|----------|----------|----------|----------|\n")
	sb.WriteString(competitorsTable(data.Competitors))
	sb.WriteString("\n\n</div>\n\n")

	sb.WriteString("## 4. 需求方案\n\n")
	sb.WriteString("<div style=\"overflow-x: auto;\" data-table=\"requirements\">\n\n")
	sb.WriteString("| 需求名称 | 优先级 | 功能点/流程 | 业务逻辑 | 数据需求 | 边缘处理 | 解决痛点 | 对应模块 |\n")
	sb.WriteString("|----------|--------|-------------|----------|----------|----------|----------|----------|\n")
	sb.WriteString(requirementsTable(data.RequirementSolution))
	sb.WriteString("\n\n</div>\n\n")
	fmt.Fprintf(&sb, "**开放问题：** %s\n\n", openIssues(data.RequirementSolution))

	sb.WriteString("## 5. 其余事项\n\n")
	fmt.Fprintf(&sb, "**相关文档链接：** %s\n\n", orNotMentioned(data.Answer("c5_related_docs")))
	sb.WriteString("**功能迭代历史：**\n\n")
	sb.WriteString("<div class=\"simple-table\">\n\n")
	sb.WriteString("| 版本 | 负责人 | 发布日期 | 迭代内容 |\n")
	sb.WriteString("|------|--------|----------|----------|\n")
	sb.WriteString(iterationHistoryTable(data.IterationHistory))
	sb.WriteString("\n\n</div>")

	return sb.String()
}

func orNotMentioned(s string) string {
	if strings.TrimSpace(s) == "" {
		return notMentioned
	}
	return s
}

func changeRecordsTable(records []ChangeRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("| 1.0 | %s | %s | %s |", notMentioned, notMentioned, notMentioned)
	}
	rows := make([]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s |",
			orNotMentioned(r.Version), orNotMentioned(r.Modifier), orNotMentioned(r.Date), orNotMentioned(r.Reason)))
	}
	return strings.Join(rows, "\n")
}

func userScenariosTable(scenarios []UserScenario) string {
	if len(scenarios) == 0 {
		return fmt.Sprintf("| %s | %s | %s |", notMentioned, notMentioned, notMentioned)
	}
	rows := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, fmt.Sprintf("| %s | %s | %s |",
			orNotMentioned(s.UserType), orNotMentioned(s.Scenario), orNotMentioned(s.PainPoint)))
	}
	return strings.Join(rows, "\n")
}

func competitorsTable(competitors []CompetitorItem) string {
	if len(competitors) == 0 {
		return fmt.Sprintf("| %s | %s | %s | %s | %s |",
			notMentioned, notMentioned, notMentioned, notMentioned, notMentioned)
	}
	rows := make([]string, 0, len(competitors))
	for _, c := range competitors {
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s | %s |",
			orNotMentioned(c.Name), orNotMentioned(c.Features), orNotMentioned(c.Advantages),
			orNotMentioned(c.Disadvantages), orNotMentioned(c.MarketPosition)))
	}
	return strings.Join(rows, "\n")
}

func requirementsTable(solution RequirementSolution) string {
	if len(solution.Requirements) == 0 {
		cells := make([]string, 8)
		for i := range cells {
			cells[i] = notMentioned
		}
		return "| " + strings.Join(cells, " | ") + " |"
	}
	rows := make([]string, 0, len(solution.Requirements))
	for _, r := range solution.Requirements {
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s |",
			orNotMentioned(r.Name), orNotMentioned(r.Priority), orNotMentioned(r.Features),
			orNotMentioned(r.BusinessLogic), orNotMentioned(r.DataRequirements),
			orNotMentioned(r.EdgeCases), orNotMentioned(r.PainPoints), orNotMentioned(r.Modules)))
	}
	return strings.Join(rows, "\n")
}

func openIssues(solution RequirementSolution) string {
	var issues []string
	for _, r := range solution.Requirements {
		if strings.TrimSpace(r.OpenIssues) != "" {
			issues = append(issues, r.OpenIssues)
		}
	}
	if len(issues) == 0 {
		return "暂无"
	}
	return strings.Join(issues, "; ")
}

func iterationHistoryTable(history []IterationHistory) string {
	if len(history) == 0 {
		return fmt.Sprintf("| %s | %s | %s | %s |", notMentioned, notMentioned, notMentioned, notMentioned)
	}
	rows := make([]string, 0, len(history))
	for _, h := range history {
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s |",
			orNotMentioned(h.Version), orNotMentioned(h.Author), orNotMentioned(h.Date), orNotMentioned(h.Content)))
	}
	return strings.Join(rows, "\n")
}
