package agent

import (
	"context"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const chatRedirect = "我是课程推荐助手，可以帮您查找和推荐课程。试试问我：推荐几门编程课？"

// quickReplies is checked in order; the first trigger contained in the
// message wins. Keep 你好 before hi-style greetings so Chinese input
// matches the Chinese reply.
var quickReplies = []struct {
	trigger string
	reply   string
}{
	{"你好", "你好！我是课程推荐助手，想找什么课程都可以问我。"},
	{"hi", "你好！我是课程推荐助手，想找什么课程都可以问我。"},
	{"hello", "你好！我是课程推荐助手，想找什么课程都可以问我。"},
	{"谢谢", "不客气！还有其他想了解的课程吗？"},
	{"感谢", "不客气！还有其他想了解的课程吗？"},
	{"再见", "再见！祝您选课顺利。"},
	{"拜拜", "再见！祝您选课顺利。"},
	{"好的", "好的，有需要随时问我。"},
	{"可以", "好的，有需要随时问我。"},
	{"嗯", "好的，有需要随时问我。"},
}

// ChatHandler handles small talk. It never fails: canned reply first,
// then a short LLM filler, then a static redirect to course topics.
type ChatHandler struct {
	llm    Completer
	logger logger.Logger
}

// NewChatHandler creates the CHAT handler
func NewChatHandler(llm Completer, log logger.Logger) *ChatHandler {
	return &ChatHandler{llm: llm, logger: log}
}

// Process answers the small-talk turn without touching the context
func (h *ChatHandler) Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
	return &AgentResult{
		IntentType:     IntentChat,
		Success:        true,
		Message:        h.reply(ctx, intent.OriginalMessage),
		UpdatedContext: convCtx.ToMap(),
	}, nil
}

func (h *ChatHandler) reply(ctx context.Context, message string) string {
	lowered := strings.ToLower(message)
	for _, qr := range quickReplies {
		if strings.Contains(lowered, qr.trigger) {
			return qr.reply
		}
	}

	answer, err := h.llm.Complete(ctx, deepseek.CompletionRequest{
		SystemPrompt: "你是大学课程推荐助手。用一两句话友好地回应用户的闲聊，并自然地引导用户询问课程相关的问题。用中文回答。",
		UserPrompt:   message,
		Temperature:  0.8,
		MaxTokens:    100,
	})
	if err != nil {
		h.logger.Debug("Chat LLM call failed, using redirect", "error", err)
		return chatRedirect
	}
	return answer
}
