package services

import "strings"

const jsonFormatPrefix = "Format your response as JSON following this structure: "

const (
	calendarSystemPrompt = "You are an AI educational assistant that generates personalized learning schedules. " +
		jsonFormatPrefix +
		"{days: [{date: number, events: [{type: 'lecture' | 'assignment' | 'quiz'}]}], events: [{title: string, description: string, time: string, type: 'lecture' | 'assignment' | 'quiz'}]}"

	assistantSystemPrompt = "You are a helpful AI educational assistant who helps students understand complex topics in physics, chemistry, and mathematics. " +
		"You provide clear, concise explanations with relevant examples. You are knowledgeable, accurate, and supportive."

	mindMapSystemPrompt = "You are an AI educational assistant that generates mind maps from lecture content. " +
		jsonFormatPrefix +
		"{nodes: [{id: string, label: string}], edges: [{source: string, target: string}]}"

	summarySystemPrompt = "You are an AI educational assistant that summarizes lecture content. " +
		jsonFormatPrefix +
		"{keyPoints: string[], summary: string}"

	hintSystemPrompt = "You are an AI educational assistant that provides hints for assignments without giving away the full solution. " +
		jsonFormatPrefix +
		"{hint: string, explanation: string}"

	quizSystemPrompt = "You are an AI educational assistant that generates quizzes from educational content. " +
		jsonFormatPrefix +
		"{questions: [{question: string, options: string[], correctAnswer: number}]}"

	plagiarismSystemPrompt = "You are an AI educational assistant that checks for plagiarism in student submissions. " +
		jsonFormatPrefix +
		"{score: number} where score is a percentage from 0 to 100."

	suggestionsSystemPrompt = "You are an AI educational assistant that provides teaching suggestions based on student data. " +
		jsonFormatPrefix +
		"{suggestions: string[]}"
)

// promptIndent is the indentation inside the plagiarism prompt.
const promptIndent = "          "

const (
	calendarUserPrompt    = "Generate a personalized 2-week calendar for a student interested in physics, chemistry, and mathematics with focus on quantum mechanics and organic chemistry. Use studentId: %d to personalize content."
	mindMapUserPrompt     = "Generate a mind map for the following lecture content: %s"
	summaryUserPrompt     = "Summarize the following lecture content and extract key points: %s"
	hintUserPrompt        = "Provide a helpful hint for the following assignment question: %s"
	quizUserPrompt        = "Generate a quiz with multiple-choice questions based on the following content: %s"
	plagiarismUserPrompt  = "Compare the following submission with the reference content and provide a plagiarism score: \n" + promptIndent + "\n" + promptIndent + "Submission: %s\n" + promptIndent + "\n" + promptIndent + "Reference: %s"
	suggestionsUserPrompt = "Generate teaching suggestions based on the following student data: %s"
)

// Sample material used when the store holds nothing better.
const (
	sampleLectureShort = "Quantum mechanics is a fundamental theory in physics that describes the behavior of matter and energy at the atomic and subatomic scales. " +
		"Key concepts include wave functions, the Schrödinger equation, quantum entanglement, and the uncertainty principle. " +
		"Wave-particle duality is a central concept where quantum entities exhibit both wave-like and particle-like properties."

	sampleLectureLong = "Quantum mechanics is a fundamental theory in physics that describes the behavior of matter and energy at the atomic and subatomic scales. " +
		"The theory was developed in the early 20th century to explain phenomena that classical physics could not account for. " +
		"Key concepts include wave functions, which describe the quantum state of a system; the Schrödinger equation, which governs how these wave functions evolve over time; " +
		"quantum entanglement, where particles become correlated in ways that cannot be explained by classical physics; " +
		"and the uncertainty principle, which places limits on how precisely certain pairs of physical properties can be measured simultaneously."

	sampleHintQuestion = "In a hydrogen atom, if we measure the position of the electron with high precision, what happens to our ability to determine its momentum? " +
		"Explain using the principles of quantum mechanics."

	sampleQuizDocument = "Quantum mechanics is governed by several key principles. " +
		"The Heisenberg Uncertainty Principle states that we cannot simultaneously know both the position and momentum of a particle with perfect precision. " +
		"The Schrödinger equation describes how quantum systems evolve over time, using wave functions to represent the probability distribution of a particle's position or other properties. " +
		"Quantum entanglement occurs when particles interact in ways such that the quantum state of each particle cannot be described independently of the others, regardless of the distance separating them."

	sampleSubmission = "Quantum entanglement is a physical phenomenon that occurs when a group of particles are generated, interact, or share spatial proximity in a way such that " +
		"the quantum state of each particle of the group cannot be described independently of the state of the others, including when the particles are separated by a large distance."

	sampleReference = "Quantum entanglement occurs when a pair of particles interact in such a way that the quantum state of each particle cannot be described independently of the others. " +
		"This remains true even when the particles are separated by a large distance."

	sampleStudentData = "Student 1: Attendance 70%, Average Grade: B-, Participation in discussions: Low. " +
		"Student 2: Attendance 95%, Average Grade: A, Participation in discussions: High but shows confusion on quantum entanglement topics."
)

const (
	assistantErrorReply = "I apologize, but I'm having trouble connecting to my knowledge base right now. Please try again in a few moments, or check if the OpenAI API key is valid."
	assistantEmptyReply = "I'm sorry, I couldn't process that question. Please try again."
)

type fallbackTopic struct {
	keywords []string
	answer   string
}

// Checked in order; the first topic with a matching keyword wins.
var fallbackTopics = []fallbackTopic{
	{
		keywords: []string{"physics", "chemistry", "biology", "science", "atom", "molecule", "cell"},
		answer: "Based on general scientific principles, I can tell you that science is a systematic approach to understanding the natural world through observation and experimentation. " +
			"For detailed information on this specific scientific topic, I recommend checking your course textbook or visiting educational websites like Khan Academy.",
	},
	{
		keywords: []string{"math", "algebra", "calculus", "equation", "formula", "geometry", "trigonometry"},
		answer: "Mathematics is all about patterns, relationships, and problem-solving. " +
			"To fully address this specific math question, you'd benefit from reviewing your course materials or checking online resources like Khan Academy or Paul's Online Math Notes.",
	},
	{
		keywords: []string{"literature", "book", "novel", "poem", "author", "writing", "story"},
		answer: "Literature allows us to explore different perspectives and human experiences through written works. " +
			"For more specific analysis on this literary topic, I recommend consulting your course materials or checking online resources like SparkNotes or LitCharts.",
	},
}

const genericFallbackAnswer = "I understand your question, but I'm currently running in a demonstration mode with limited knowledge. " +
	"For the most accurate information on this topic, I recommend consulting your course materials or relevant educational websites."

// fallbackAnswer picks a canned reply by substring match on the lowercased
// question.
func fallbackAnswer(question string) string {
	q := strings.ToLower(question)
	for _, topic := range fallbackTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(q, kw) {
				return topic.answer
			}
		}
	}
	return genericFallbackAnswer
}
