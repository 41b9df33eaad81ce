package data

// levelTableSize covers levels 0..200. Index 0 mirrors level 1.
const levelTableSize = 201

// playerLevelMultipliers scales transformative and catalyze reactions
// triggered by playable characters.
var playerLevelMultipliers = [levelTableSize]float64{
	17.165605545043945, // 0
	17.165605545043945, // 1
	18.53504753112793,  // 2
	19.90485382080078,  // 3
	21.27490234375,     // 4
	22.6454,            // 5
	24.649612426757812, // 6
	26.640642166137695, // 7
	28.868587493896484, // 8
	31.36768,           // 9
	34.14334487915039,  // 10
	37.201,             // 11
	40.66,              // 12
	44.4466667175293,   // 13
	48.56352,           // 14
	53.74848,           // 15
	59.0818977355957,   // 16
	64.4200439453125,   // 17
	69.72446,           // 18
	75.12314,           // 19
	80.58478,           // 20
	86.11203,           // 21
	91.70374,           // 22
	97.24463,           // 23
	102.8126449584961,  // 24
	108.40956,          // 25
	113.20169,          // 26
	118.1029052734375,  // 27
	122.97932,          // 28
	129.72732543945312, // 29
	136.29291,          // 30
	142.6708526611328,  // 31
	149.02902,          // 32
	155.41699,          // 33
	161.8255,           // 34
	169.10631,          // 35
	176.51808,          // 36
	184.07274,          // 37
	191.70952,          // 38
	199.55691528320312, // 39
	207.38205,          // 40
	215.3989,           // 41
	224.16566467285156, // 42
	233.50216674804688, // 43
	243.35057,          // 44
	256.0630798339844,  // 45
	268.5435,           // 46
	281.52606201171875, // 47
	295.0136413574219,  // 48
	309.0672,           // 49
	323.6016,           // 50
	336.7575378417969,  // 51
	350.5303,           // 52
	364.4827,           // 53
	378.6191711425781,  // 54
	398.6004,           // 55
	416.39825439453125, // 56
	434.387,            // 57
	452.9510498046875,  // 58
	472.6062316894531,  // 59
	492.8849,           // 60
	513.5685424804688,  // 61
	539.1032,           // 62
	565.5105590820312,  // 63
	592.5387573242188,  // 64
	624.4434,           // 65
	651.4701538085938,  // 66
	679.4968,           // 67
	707.7940673828125,  // 68
	736.6714477539062,  // 69
	765.6402587890625,  // 70
	794.7734,           // 71
	824.6773681640625,  // 72
	851.1578,           // 73
	877.7420654296875,  // 74
	914.2291,           // 75
	946.7467651367188,  // 76
	979.4114,           // 77
	1011.223,           // 78
	1044.791748046875,  // 79
	1077.4437,          // 80
	1109.99755859375,   // 81
	1142.9766,          // 82
	1176.3695,          // 83
	1210.1844482421875, // 84
	1253.8357,          // 85
	1288.9527587890625, // 86
	1325.4841,          // 87
	1363.4569,          // 88
	1405.0974,          // 89
	1446.8535,          // 90
	1488.2156,          // 91
	1528.4446,          // 92
	1580.3679,          // 93
	1630.8475,          // 94
	1711.19775390625,   // 95
	1780.454,           // 96
	1847.32275390625,   // 97
	1911.4744,          // 98
	1972.8644,          // 99
	2030.0718,          // 100
	2084.6357421875,    // 101
	2139.05029296875,   // 102
	2193.21337890625,   // 103
	2234.17333984375,   // 104
	2284.82421875,      // 105
	2303.821533203125,  // 106
	2322.88,            // 107
	2341.99951171875,   // 108
	2361.1806640625,    // 109
	2380.42333984375,   // 110
	2399.727783203125,  // 111
	2419.09423828125,   // 112
	2438.5224609375,    // 113
	2458.01318359375,   // 114
	2491.481,           // 115
	2515.023681640625,  // 116
	2538.6435546875,    // 117
	2562.340576171875,  // 118
	2586.115,           // 119
	2609.96728515625,   // 120
	2633.897216796875,  // 121
	2657.905,           // 122
	2681.9912109375,    // 123
	2706.15576171875,   // 124
	2730.399,           // 125
	2740.8056640625,    // 126
	2751.238,           // 127
	2761.696,           // 128
	2772.1796875,       // 129
	2782.689,           // 130
	2793.223876953125,  // 131
	2803.78466796875,   // 132
	2814.371337890625,  // 133
	2824.984,           // 134
	2835.622314453125,  // 135
	2846.28662109375,   // 136
	2856.977294921875,  // 137
	2867.69384765625,   // 138
	2878.436767578125,  // 139
	2889.20556640625,   // 140
	2900.001,           // 141
	2910.822509765625,  // 142
	2921.67041015625,   // 143
	2932.545,           // 144
	2943.44580078125,   // 145
	2954.373291015625,  // 146
	2965.3271484375,    // 147
	2976.307861328125,  // 148
	2987.315185546875,  // 149
	2998.349365234375,  // 150
	3009.41015625,      // 151
	3020.498,           // 152
	3031.61279296875,   // 153
	3042.75439453125,   // 154
	3053.923,           // 155
	3065.119,           // 156
	3076.341796875,     // 157
	3087.591796875,     // 158
	3098.869140625,     // 159
	3110.173828125,     // 160
	3121.505615234375,  // 161
	3132.865,           // 162
	3144.252,           // 163
	3155.666259765625,  // 164
	3167.108,           // 165
	3178.577392578125,  // 166
	3190.07470703125,   // 167
	3201.599609375,     // 168
	3213.152,           // 169
	3224.732666015625,  // 170
	3236.341,           // 171
	3247.977294921875,  // 172
	3259.6416015625,    // 173
	3271.334,           // 174
	3283.054443359375,  // 175
	3294.803,           // 176
	3306.579833984375,  // 177
	3318.384765625,     // 178
	3330.218,           // 179
	3342.079833984375,  // 180
	3353.97,            // 181
	3365.888671875,     // 182
	3377.835693359375,  // 183
	3389.8115234375,    // 184
	3401.816,           // 185
	3413.848876953125,  // 186
	3425.911,           // 187
	3438.00146484375,   // 188
	3450.120849609375,  // 189
	3462.269287109375,  // 190
	3474.446533203125,  // 191
	3486.65283203125,   // 192
	3498.888427734375,  // 193
	3511.15283203125,   // 194
	3523.446533203125,  // 195
	3535.623,           // 196
	3547.975,           // 197
	3560.356201171875,  // 198
	3572.766845703125,  // 199
	3585.207,           // 200
}

// environmentLevelMultipliers scales reactions triggered by enemies and
// other non-playable sources.
var environmentLevelMultipliers = [levelTableSize]float64{
	17.165606,  // 0
	17.165606,  // 1
	18.535048,  // 2
	19.904854,  // 3
	21.274902,  // 4
	22.6454,    // 5
	24.649612,  // 6
	26.640642,  // 7
	28.868587,  // 8
	31.36768,   // 9
	34.143345,  // 10
	37.201,     // 11
	40.66,      // 12
	44.446667,  // 13
	48.56352,   // 14
	53.74848,   // 15
	59.081898,  // 16
	64.420044,  // 17
	69.72446,   // 18
	75.12314,   // 19
	80.58478,   // 20
	86.11203,   // 21
	91.70374,   // 22
	97.24463,   // 23
	102.812645, // 24
	108.40956,  // 25
	113.20169,  // 26
	118.102905, // 27
	122.97932,  // 28
	129.72733,  // 29
	136.29291,  // 30
	142.67085,  // 31
	149.02902,  // 32
	155.41699,  // 33
	161.8255,   // 34
	169.10631,  // 35
	176.51808,  // 36
	184.07274,  // 37
	191.70952,  // 38
	199.55692,  // 39
	207.38205,  // 40
	215.3989,   // 41
	224.16566,  // 42
	233.50217,  // 43
	243.35057,  // 44
	256.06308,  // 45
	268.5435,   // 46
	281.52606,  // 47
	295.01364,  // 48
	309.0672,   // 49
	323.6016,   // 50
	336.75754,  // 51
	350.5303,   // 52
	364.4827,   // 53
	378.61917,  // 54
	398.6004,   // 55
	416.39825,  // 56
	434.387,    // 57
	452.5668,   // 58
	471.42627,  // 59
	490.48166,  // 60
	509.50427,  // 61
	532.7718,   // 62
	556.3933,   // 63
	580.103,    // 64
	607.89496,  // 65
	630.20135,  // 66
	652.8668,   // 67
	675.18634,  // 68
	697.78265,  // 69
	720.17035,  // 70
	742.45465,  // 71
	765.2055,   // 72
	784.37463,  // 73
	803.4012,   // 74
	830.9208,   // 75
	854.4033,   // 76
	877.75977,  // 77
	900.11725,  // 78
	923.76666,  // 79
	946.37024,  // 80
	968.63416,  // 81
	991.02936,  // 82
	1013.5271,  // 83
	1036.1329,  // 84
	1066.6237,  // 85
	1089.9642,  // 86
	1114.9645,  // 87
	1141.6626,  // 88
	1171.9418,  // 89
	1202.8137,  // 90
	1233.94,    // 91
	1264.6997,  // 92
	1305.6895,  // 93
	1346.0844,  // 94
	1411.7382,  // 95
	1468.8745,  // 96
	1524.0413,  // 97
	1576.9663,  // 98
	1627.613,   // 99
	1674.8092,  // 100
	1719.8245,  // 101
	1764.7166,  // 102
	1809.4011,  // 103
	1843.193,   // 104
	1884.98,    // 105
	1900.6527,  // 106
	1916.3759,  // 107
	1932.1495,  // 108
	1947.974,   // 109
	1963.8492,  // 110
	1979.7754,  // 111
	1995.7527,  // 112
	2011.7811,  // 113
	2027.8608,  // 114
	2055.472,   // 115
	2074.8945,  // 116
	2094.3809,  // 117
	2113.931,   // 118
	2133.545,   // 119
	2153.223,   // 120
	2172.965,   // 121
	2192.7717,  // 122
	2212.6428,  // 123
	2232.5786,  // 124
	2252.579,   // 125
	2261.1648,  // 126
	2269.7715,  // 127
	2278.3992,  // 128
	2287.048,   // 129
	2295.7183,  // 130
	2304.4097,  // 131
	2313.1223,  // 132
	2321.8564,  // 133
	2330.6116,  // 134
	2339.3884,  // 135
	2348.1865,  // 136
	2357.0063,  // 137
	2365.8474,  // 138
	2374.7102,  // 139
	2383.5947,  // 140
	2392.5007,  // 141
	2401.4285,  // 142
	2410.3782,  // 143
	2419.3496,  // 144
	2428.3428,  // 145
	2437.358,   // 146
	2446.395,   // 147
	2455.454,   // 148
	2464.5352,  // 149
	2473.6382,  // 150
	2482.7634,  // 151
	2491.911,   // 152
	2501.0806,  // 153
	2510.2725,  // 154
	2519.4866,  // 155
	2528.7231,  // 156
	2537.982,   // 157
	2547.2632,  // 158
	2556.5671,  // 159
	2565.8933,  // 160
	2575.2422,  // 161
	2584.6138,  // 162
	2594.0078,  // 163
	2603.4246,  // 164
	2612.864,   // 165
	2622.3264,  // 166
	2631.8115,  // 167
	2641.3196,  // 168
	2650.8506,  // 169
	2660.4045,  // 170
	2669.9814,  // 171
	2679.5813,  // 172
	2689.2043,  // 173
	2698.8506,  // 174
	2708.5198,  // 175
	2718.2124,  // 176
	2727.9282,  // 177
	2737.6675,  // 178
	2747.43,    // 179
	2757.2158,  // 180
	2767.0251,  // 181
	2776.8582,  // 182
	2786.7146,  // 183
	2796.5945,  // 184
	2806.498,   // 185
	2816.4255,  // 186
	2826.3765,  // 187
	2836.351,   // 188
	2846.3496,  // 189
	2856.372,   // 190
	2866.4185,  // 191
	2876.4888,  // 192
	2886.5828,  // 193
	2896.7012,  // 194
	2906.8435,  // 195
	2916.889,   // 196
	2927.0793,  // 197
	2937.294,   // 198
	2947.5327,  // 199
	2957.796,   // 200
}
