package service

import (
	"sort"
	"strings"
	"time"

	"gemilang_backend/internals/constants"
	"gemilang_backend/internals/features/blog/posts/dto"
	"gemilang_backend/internals/features/blog/posts/model"
	TopicModel "gemilang_backend/internals/features/blog/topics/model"
)

// TopicGroup adalah satu bucket topic di tampilan admin: nama topic +
// post-nya yang dikelompokkan per kode bahasa (upper-case).
type TopicGroup struct {
	TopicName string                   `json:"topic_name"`
	Languages map[string][]dto.PostDTO `json:"languages"`
}

// GroupByTopicThenLanguage menyusun post untuk tampilan admin:
// topic -> bahasa -> posts. Post tanpa topic masuk bucket "No Topic".
// Bucket diurutkan alfabetis, sentinel "No Topic" selalu paling akhir.
// Hanya dipakai admin view; read path publik tidak pernah grouping.
func GroupByTopicThenLanguage(posts []model.PostModel, topics []TopicModel.TopicModel, urlFor func(string) string) []TopicGroup {
	topicNames := make(map[string]string, len(topics))
	for _, t := range topics {
		topicNames[t.TopicID] = t.TopicName
	}

	buckets := make(map[string]map[string][]dto.PostDTO)
	for _, p := range posts {
		name := constants.TopicNone
		if p.PostTopicID != nil {
			if n, ok := topicNames[*p.PostTopicID]; ok {
				name = n
			}
		}

		lang := strings.ToUpper(constants.NormalizeLanguage(p.PostLanguage))

		if buckets[name] == nil {
			buckets[name] = make(map[string][]dto.PostDTO)
		}
		buckets[name][lang] = append(buckets[name][lang], dto.ToPostDTO(p, urlFor))
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == constants.TopicNone {
			return false
		}
		if names[j] == constants.TopicNone {
			return true
		}
		return names[i] < names[j]
	})

	out := make([]TopicGroup, 0, len(names))
	for _, name := range names {
		out = append(out, TopicGroup{TopicName: name, Languages: buckets[name]})
	}
	return out
}

// PrefillFrom membuat draft post untuk varian bahasa baru dari sebuah topic.
// Source: varian English kalau ada, kalau tidak post pertama di topic itu
// (tanggal terbaru). Tanpa source -> draft kosong untuk targetLanguage.
// Read-only: tidak pernah mempersist apa pun.
func PrefillFrom(topicName, targetLanguage string, topics []TopicModel.TopicModel, posts []model.PostModel) dto.PostDraftDTO {
	targetLanguage = constants.NormalizeLanguage(targetLanguage)

	draft := dto.PostDraftDTO{
		Date:     time.Now().Format(dto.DateLayout),
		IsActive: false,
		Language: targetLanguage,
		Contents: []dto.ContentBlockDTO{},
	}

	var topicID string
	for _, t := range topics {
		if t.TopicName == topicName {
			topicID = t.TopicID
			draft.TopicID = &t.TopicID
			break
		}
	}
	if topicID == "" {
		return draft
	}

	var inTopic []model.PostModel
	for _, p := range posts {
		if p.PostTopicID != nil && *p.PostTopicID == topicID {
			inTopic = append(inTopic, p)
		}
	}
	if len(inTopic) == 0 {
		return draft
	}

	sort.Slice(inTopic, func(i, j int) bool {
		return inTopic[i].PostDate.After(inTopic[j].PostDate)
	})

	source := inTopic[0]
	for _, p := range inTopic {
		if constants.NormalizeLanguage(p.PostLanguage) == constants.DefaultLanguage {
			source = p
			break
		}
	}

	draft.Title = source.PostTitle
	draft.Excerpt = source.PostExcerpt
	draft.Category = source.PostCategory
	draft.MetaTitle = source.PostMetaTitle
	draft.MetaDescription = source.PostMetaDescription
	draft.Contents = dto.ToContentBlockDTOs(source.Contents)
	return draft
}
