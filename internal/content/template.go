package content

// paragraphTemplates each take the topic name as their only verb.
var paragraphTemplates = [...]string{
	"%s is a fundamental concept that encompasses various aspects of knowledge and understanding. " +
		"This field of study involves systematic investigation, analysis, and practical application of " +
		"principles that have been developed through extensive research and observation.",

	"Understanding %s is crucial for developing comprehensive knowledge in this field. Students and " +
		"professionals in related fields benefit from comprehensive understanding of core concepts, " +
		"methodologies, and current trends that shape this discipline.",

	"%s has wide-ranging applications in modern society and continues to evolve with new discoveries. " +
		"From theoretical foundations to practical implementations, this subject area demonstrates " +
		"significant relevance in solving real-world problems and advancing human knowledge.",

	"Current research in %s focuses on innovative approaches and technological advancements. Ongoing " +
		"studies continue to reveal new insights, challenge existing paradigms, and open pathways for " +
		"innovation and discovery.",

	"The future of %s holds promising developments that will impact various sectors. Emerging " +
		"technologies, changing global needs, and interdisciplinary approaches are reshaping the " +
		"landscape and creating new opportunities for growth and development.",
}
