package services

import (
	"strings"
	"unicode/utf8"

	"educator-site/internal/models"
)

const (
	quizCorrectMessage = "🎉 Правильно! Молодец!"
	quizWrongMessage   = "Попробуй ещё раз! Ты почти угадал!"
	pollThanksMessage  = "Спасибо за участие в опросе! Ваше мнение очень важно для нас."

	maxPollCommentLength = 2000
)

const profilePhotoURL = "https://cdn.poehali.dev/projects/72856814-469f-431a-a44e-d47166687aaa/files/73103622-ba46-4c76-a8a7-7cb5e79db51d.jpg"

type quiz struct {
	models.Quiz
	correct string
}

// ContentService serves the static parts of the site: profile, recommendations, quizzes and the poll.
type ContentService struct {
	profile         models.Profile
	recommendations []models.Recommendation
	quizzes         []quiz
	poll            models.Poll
}

func NewContentService() *ContentService {
	return &ContentService{
		profile: models.Profile{
			Name:     "Искендерова Татьяна Дмитриевна",
			Role:     "Воспитатель",
			Position: "Воспитатель дошкольной группы",
			Tagline:  "Здесь вы найдёте фотографии наших событий, полезные рекомендации и развивающие игры для ваших детей",
			PhotoURL: profilePhotoURL,
			Sections: []models.ProfileSection{
				{Icon: "GraduationCap", Title: "Образование", Text: "Высшее педагогическое образование по специальности «Дошкольная педагогика и психология»"},
				{Icon: "Briefcase", Title: "Опыт работы", Text: "Более 15 лет работы с детьми дошкольного возраста. Постоянное повышение квалификации и участие в педагогических семинарах."},
				{Icon: "Heart", Title: "Подход к работе", Text: "Индивидуальный подход к каждому ребёнку, создание атмосферы доверия и безопасности. Активное вовлечение родителей в образовательный процесс."},
				{Icon: "Award", Title: "Достижения", Text: "Благодарственные письма от родителей, победитель конкурса «Лучший воспитатель года», автор методических разработок по развитию детей."},
			},
		},
		recommendations: []models.Recommendation{
			{ID: 1, Title: "Развитие речи в домашних условиях", Icon: "MessageCircle", Description: "Разговаривайте с ребёнком о событиях дня, читайте книги вместе и задавайте вопросы по содержанию. Играйте в словесные игры."},
			{ID: 2, Title: "Режим дня и его важность", Icon: "Clock", Description: "Соблюдайте постоянный режим сна и бодрствования. Это помогает ребёнку чувствовать себя в безопасности и лучше адаптироваться."},
			{ID: 3, Title: "Подготовка к детскому саду", Icon: "Home", Description: "За несколько недель до начала посещения садика начните приучать ребёнка к режиму. Расскажите о садике позитивно."},
			{ID: 4, Title: "Развитие мелкой моторики", Icon: "Hand", Description: "Лепка, рисование, игры с конструктором развивают пальчики и готовят руку к письму. Уделяйте этому 15-20 минут ежедневно."},
		},
		quizzes: []quiz{
			{Quiz: models.Quiz{ID: 1, Title: "Загадка про животных", Question: "Кто зимой холодной ходит злой, голодный?", Options: []string{"Заяц", "Волк", "Лиса", "Медведь"}}, correct: "Волк"},
			{Quiz: models.Quiz{ID: 2, Title: "Цветовой ребус", Question: "Какой цвет получится, если смешать синий и жёлтый?", Options: []string{"Красный", "Зелёный", "Фиолетовый", "Оранжевый"}}, correct: "Зелёный"},
			{Quiz: models.Quiz{ID: 3, Title: "Считалочка", Question: "У кошки 4 лапы. Сколько лап у двух кошек?", Options: []string{"4", "6", "8", "10"}}, correct: "8"},
		},
		poll: models.Poll{
			Title:       "Опрос для родителей",
			Description: "Ваше мнение помогает нам становиться лучше!",
			Question:    "Как вы оцениваете работу группы в этом месяце?",
			Options:     []string{"Отлично", "Хорошо", "Удовлетворительно", "Требует улучшения"},
		},
	}
}

func (s *ContentService) Profile() models.Profile {
	p := s.profile
	p.Sections = append([]models.ProfileSection(nil), s.profile.Sections...)
	return p
}

func (s *ContentService) Recommendations() []models.Recommendation {
	return append([]models.Recommendation(nil), s.recommendations...)
}

// Quizzes returns the quizzes without their answers.
func (s *ContentService) Quizzes() []models.Quiz {
	out := make([]models.Quiz, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		q.Options = append([]string(nil), q.Options...)
		out = append(out, q.Quiz)
	}
	return out
}

// CheckAnswer compares the chosen option with the quiz's correct answer.
func (s *ContentService) CheckAnswer(quizID int, answer string) (*models.QuizAnswerResponse, error) {
	for _, q := range s.quizzes {
		if q.ID != quizID {
			continue
		}
		if answer == "" {
			return nil, models.ErrAnswerRequired
		}
		if answer == q.correct {
			return &models.QuizAnswerResponse{Correct: true, Message: quizCorrectMessage}, nil
		}
		return &models.QuizAnswerResponse{Correct: false, Message: quizWrongMessage}, nil
	}

	return nil, models.ErrQuizNotFound
}

func (s *ContentService) Poll() models.Poll {
	p := s.poll
	p.Options = append([]string(nil), s.poll.Options...)
	return p
}

// SubmitPoll acknowledges a poll answer. Nothing is stored.
func (s *ContentService) SubmitPoll(answer, comment string) (*models.PollSubmitResponse, error) {
	if answer == "" {
		return nil, models.ErrPollAnswerRequired
	}

	known := false
	for _, opt := range s.poll.Options {
		if opt == answer {
			known = true
			break
		}
	}
	if !known {
		return nil, models.ErrUnknownPollOption
	}

	if utf8.RuneCountInString(comment) > maxPollCommentLength {
		return nil, models.ErrCommentTooLong
	}

	log.Infof("poll: answer %q, comment %d chars", answer, utf8.RuneCountInString(strings.TrimSpace(comment)))

	return &models.PollSubmitResponse{Success: true, Message: pollThanksMessage}, nil
}
