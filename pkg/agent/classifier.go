package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const classifierSystemPrompt = `你是课程推荐系统的意图识别器。分析用户消息，输出一个JSON对象，不要输出任何其他内容。

意图类型（intentType）：
- NEW_QUERY：全新的课程查询，与之前的推荐无关（如"推荐几门编程课"）
- REFINE：在上一轮推荐的课程中继续筛选（如"这些课里有周三上课的吗"）
- SUPPLEMENT：在原有查询条件上补充新条件重新查询（如"再加上3学分的条件"）
- COMPARE：对比两门或多门课程（如"Python和Java课哪个好"）
- DETAIL：询问某一门课程的详细信息（如"介绍一下机器学习这门课"）
- CHAT：寒暄、感谢等与课程无关的闲聊

参数槽位（parameters，只输出用户明确提到的）：
- faculty：学院名称。按关键词归一化：编程/计算机/软件/人工智能/数据 -> 创新工程学院；商科/金融/管理/会计/市场营销 -> 商学院；法律/法学 -> 法学院；医学/药学/护理 -> 医学院；艺术/设计/传播 -> 人文艺术学院；酒店/旅游 -> 酒店与旅游管理学院
- teacher：教师姓名
- courseType：COMPULSORY（必修）或 ELECTIVE（选修）
- credits：学分数字
- difficulty：难度描述（如"简单"、"难"）
- dayOfWeek：星期几，数字列表，周一=1 ... 周日=7（"周三"输出[3]，"周三或周五"输出[3,5]）
- timePeriod：节次，1=上午第一段，2=上午第二段，3=下午，4=晚上

其他字段：
- keywords：主题关键词列表（如["编程","神经网络"]）
- coursesToCompare：COMPARE意图下用户提到的课程名列表
- courseToQuery：DETAIL意图下用户询问的课程名
- referenceLastResult：用户是否明确指代上一轮推荐结果（"这些"、"上面的"、"刚才推荐的"）
- confidence：0到1的置信度

输出格式示例：
{"intentType":"NEW_QUERY","parameters":{"faculty":"创新工程学院","dayOfWeek":[3],"timePeriod":1},"keywords":["编程"],"coursesToCompare":[],"courseToQuery":"","referenceLastResult":false,"confidence":0.9}`

// classifierPayload mirrors the JSON contract the model is told to emit
type classifierPayload struct {
	IntentType          string                 `json:"intentType"`
	Parameters          map[string]interface{} `json:"parameters"`
	Keywords            []string               `json:"keywords"`
	CoursesToCompare    []string               `json:"coursesToCompare"`
	CourseToQuery       string                 `json:"courseToQuery"`
	ReferenceLastResult bool                   `json:"referenceLastResult"`
	Confidence          *float64               `json:"confidence"`
}

// Classifier turns one raw user message into a structured Intent
type Classifier struct {
	llm    Completer
	logger logger.Logger
}

// NewClassifier creates an intent classifier backed by the given LLM
func NewClassifier(llm Completer, log logger.Logger) *Classifier {
	return &Classifier{llm: llm, logger: log}
}

// Classify never fails: any LLM or parse problem degrades to a
// NEW_QUERY intent with low confidence so the pipeline always proceeds.
func (c *Classifier) Classify(ctx context.Context, message string, convCtx ConversationContext) Intent {
	fallback := Intent{
		Type:            IntentNewQuery,
		Confidence:      0.5,
		OriginalMessage: message,
	}

	raw, err := c.llm.Complete(ctx, deepseek.CompletionRequest{
		SystemPrompt: classifierSystemPrompt,
		UserPrompt:   c.buildUserPrompt(message, convCtx),
		Temperature:  0.3,
		MaxTokens:    500,
		JSONOutput:   true,
	})
	if err != nil {
		c.logger.Warn("Intent classification failed, defaulting to NEW_QUERY", "error", err)
		return fallback
	}

	var payload classifierPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		c.logger.Warn("Intent classification returned unparseable JSON", "error", err, "raw", raw)
		return fallback
	}

	intent := Intent{
		Type:                ParseIntentType(payload.IntentType),
		Params:              ParamsFromMap(payload.Parameters),
		Keywords:            cleanStrings(payload.Keywords),
		CoursesToCompare:    cleanStrings(payload.CoursesToCompare),
		CourseToQuery:       strings.TrimSpace(payload.CourseToQuery),
		ReferenceLastResult: payload.ReferenceLastResult,
		Confidence:          0.8,
		OriginalMessage:     message,
	}
	if payload.Confidence != nil && *payload.Confidence >= 0 && *payload.Confidence <= 1 {
		intent.Confidence = *payload.Confidence
	}

	c.logger.Debug("Intent classified",
		"intent", string(intent.Type),
		"confidence", intent.Confidence)
	return intent
}

// buildUserPrompt embeds the conversation tail and known slots so the
// model can resolve references like "这些课" or "换成周五".
func (c *Classifier) buildUserPrompt(message string, convCtx ConversationContext) string {
	var b strings.Builder
	if summary := convCtx.HistorySummary(); summary != "" {
		b.WriteString("最近对话：\n")
		b.WriteString(summary)
		b.WriteString("\n")
	}
	if convCtx.HasLastRecommended() {
		fmt.Fprintf(&b, "上一轮推荐的课程：%s\n\n", strings.Join(convCtx.LastRecommendedNames(), "、"))
	}
	if slots := convCtx.Params.ToMap(); len(slots) > 0 {
		if raw, err := json.Marshal(slots); err == nil {
			fmt.Fprintf(&b, "已知筛选条件：%s\n\n", string(raw))
		}
	}
	fmt.Fprintf(&b, "用户消息：%s", message)
	return b.String()
}

// stripCodeFence removes a markdown ```json fence if the model wrapped
// its output despite the JSON-only instruction.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
