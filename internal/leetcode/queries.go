package leetcode

// GraphQL documents sent to the LeetCode endpoint. Field aliases match
// the wire names the rest of the codebase decodes.

const problemSetQuery = `
query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
    problemsetQuestionList: questionList(
        categorySlug: $categorySlug
        limit: $limit
        skip: $skip
        filters: $filters
    ) {
        total: totalNum
        questions: data {
            acRate
            difficulty
            frontendQuestionId: questionFrontendId
            paidOnly: isPaidOnly
            title
            titleSlug
            topicTags {
                name
                id
                slug
            }
        }
    }
}`

const userProfileQuery = `
query getUserProfile($username: String!) {
    matchedUser(username: $username) {
        username
        profile {
            ranking
            userAvatar
            realName
            countryName
        }
        submitStats {
            acSubmissionNum {
                difficulty
                count
                submissions
            }
        }
    }
}`

const dailyChallengeQuery = `
query questionOfToday {
    activeDailyCodingChallengeQuestion {
        date
        link
        question {
            acRate
            difficulty
            frontendQuestionId: questionFrontendId
            paidOnly: isPaidOnly
            title
            titleSlug
            topicTags {
                name
                id
                slug
            }
        }
    }
}`
